package services

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"fieldscore/config"
)

// BackupService wraps pg_dump/pg_restore the way the original wrapped its
// database dump tooling. Dumps land in BackupDir as custom-format archives.
type BackupService struct {
	dir string
}

func NewBackupService() *BackupService {
	return &BackupService{dir: config.BackupDir}
}

func (s *BackupService) env() []string {
	return append(os.Environ(), "PGPASSWORD="+config.PostgresPassword)
}

// CreateDump runs pg_dump and returns the dump filename and size
func (s *BackupService) CreateDump() (string, int64, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", 0, err
	}

	filename := fmt.Sprintf("fieldscore-%s.dump", time.Now().UTC().Format("20060102-150405"))
	path := filepath.Join(s.dir, filename)

	cmd := exec.Command("pg_dump",
		"-h", config.PostgresHost,
		"-p", config.PostgresPort,
		"-U", config.PostgresUser,
		"-d", config.PostgresDB,
		"-F", "c",
		"-f", path,
	)
	cmd.Env = s.env()

	if out, err := cmd.CombinedOutput(); err != nil {
		return "", 0, fmt.Errorf("pg_dump failed: %v: %s", err, strings.TrimSpace(string(out)))
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", 0, err
	}
	return filename, info.Size(), nil
}

// Restore replays a dump file into the database
func (s *BackupService) Restore(filename string) error {
	path := filepath.Join(s.dir, filepath.Base(filename))
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("backup file not found: %s", filename)
	}

	cmd := exec.Command("pg_restore",
		"-h", config.PostgresHost,
		"-p", config.PostgresPort,
		"-U", config.PostgresUser,
		"-d", config.PostgresDB,
		"--clean",
		"--if-exists",
		path,
	)
	cmd.Env = s.env()

	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("pg_restore failed: %v: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Delete removes a dump file
func (s *BackupService) Delete(filename string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
}
