package database

import (
	"fmt"
	"log"

	"fieldscore/config"
	"fieldscore/models"
	"fieldscore/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

var DefaultPassword = "admin"

// InitDB initializes the database connection, migrates the models and seeds
// the default super user on first boot
func InitDB() {
    dsn := fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=disable TimeZone=UTC", config.PostgresHost, config.PostgresPort, config.PostgresUser, config.PostgresDB, config.PostgresPassword)

    var err error
    // TranslateError maps unique violations to gorm.ErrDuplicatedKey
    DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
    if err != nil {
        log.Fatal("failed to connect database: ", err)
    }

    err = DB.AutoMigrate(
        &models.User{},
        &models.PasswordReset{},
        &models.Club{},
        &models.Course{},
        &models.Event{},
        &models.Round{},
        &models.Backup{},
    )
    if err != nil {
        log.Fatal("failed to migrate database: ", err)
    }

    Populate()
}

// Populate seeds the default super user if the database is empty
func Populate() {
    var countUser int64
    DB.Model(&models.User{}).Count(&countUser)
    if countUser != 0 {
        return
    }

    // Create the default super user with a password either from the .env file
    // or the DefaultPassword constant
    password := DefaultPassword
    if config.DefaultPassword != "" {
        password = config.DefaultPassword
    }

    password, err := utils.HashPassword(password)
    if err != nil {
        panic(err)
    }

    user := models.User{
        Name:     "Super User",
        Email:    "admin@admin.com",
        Password: password,
        Role:     models.RoleSuperUser,
        Verified: true,
    }
    DB.Create(&user)
    log.Println("Default super user created")
}
