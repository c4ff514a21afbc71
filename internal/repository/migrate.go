package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table the repositories read and write.
// Called from cmd binaries on startup; the row models are private to this
// package so the schema definition lives here too.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&companyModel{},
		&languageModel{},
		&entertainmentTypeModel{},
		&placeCategoryModel{},
		&placeModel{},
		&driverModel{},
		&bookingModel{},
		&transactionModel{},
		&paymentModel{},
		&assignmentModel{},
		&reviewModel{},
		&auditModel{},
	)
}
