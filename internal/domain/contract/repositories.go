package contract

// Repositories bundles one implementation of every repository so the
// storage backend can be chosen at startup.
type Repositories struct {
	Users           IUserRepository
	Instructors     IInstructorRepository
	Schedules       IScheduleRepository
	News            INewsRepository
	Events          IEventRepository
	Gallery         IGalleryRepository
	Registrations   IRegistrationRepository
	ContactMessages IContactMessageRepository
}
