package contract

import "github.com/judoclub/clubsite/internal/domain/entity"

// IHasher hashes and verifies account passwords.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
}

// IUUIDGenerator generates request and token identifiers.
type IUUIDGenerator interface {
	NewUUID() string
}

// ExportRow is one flattened registration for the back-office spreadsheet.
type ExportRow struct {
	Registration *entity.Registration
	User         *entity.User
	Schedule     *entity.Schedule
}

// IRegistrationExporter renders registrations as a downloadable document.
type IRegistrationExporter interface {
	ContentType() string
	Export(rows []ExportRow) ([]byte, error)
}
