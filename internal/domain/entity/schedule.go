package entity

// DayOfWeek is the weekday a class takes place on.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
	Saturday  DayOfWeek = "saturday"
	Sunday    DayOfWeek = "sunday"
)

// Weekdays lists the days in calendar order.
var Weekdays = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// Index returns the position of the day in the week starting on monday, or
// len(Weekdays) for an unknown value so that it sorts last.
func (d DayOfWeek) Index() int {
	for i, w := range Weekdays {
		if w == d {
			return i
		}
	}
	return len(Weekdays)
}

// ClassLevel is the age group a class is aimed at.
type ClassLevel string

const (
	LevelKids   ClassLevel = "kids"
	LevelTeens  ClassLevel = "teens"
	LevelAdults ClassLevel = "adults"
)

var ClassLevels = []ClassLevel{LevelKids, LevelTeens, LevelAdults}

// Schedule is a weekly class slot. Times are stored as "15:04" and the price
// as a decimal string with two fractional digits.
type Schedule struct {
	ID           int64      `bson:"_id" json:"id"`
	DayOfWeek    DayOfWeek  `bson:"day_of_week" json:"dayOfWeek"`
	StartTime    string     `bson:"start_time" json:"startTime"`
	EndTime      string     `bson:"end_time" json:"endTime"`
	Level        ClassLevel `bson:"level" json:"level"`
	Description  *string    `bson:"description,omitempty" json:"description"`
	Price        *string    `bson:"price,omitempty" json:"price"`
	InstructorID *int64     `bson:"instructor_id,omitempty" json:"instructorId"`
}
