package backups

// Error messages constants
const (
	ErrBackupNotFound        = "Backup not found"
	ErrNoPermission          = "User does not have permission for this action"
	ErrFailedToGetBackups    = "Failed to get backups"
	ErrFailedToCreateBackup  = "Failed to create backup"
	ErrFailedToRestoreBackup = "Failed to restore backup"
	ErrFailedToDeleteBackup  = "Failed to delete backup"
)
