package repository

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	errorvalues "github.com/limbo/eventtracker/internal/error_values"
	"github.com/limbo/eventtracker/pkg/entity"
)

// CredentialsFileRepository keeps every credential in one JSON object
// (username -> "salt:hash") and rewrites the whole file on registration.
// Records that are not strings are kept as found: the name stays taken and the
// record never verifies.
type CredentialsFileRepository struct {
	mu        sync.Mutex
	path      string
	users     map[string]string
	malformed map[string]any
	logger    *zap.Logger
}

func NewCredentialsFileRepo(path string, logger *zap.Logger) *CredentialsFileRepository {
	repo := &CredentialsFileRepository{
		path:      path,
		users:     make(map[string]string),
		malformed: make(map[string]any),
		logger:    logger,
	}
	repo.load()
	return repo
}

// load is permissive: a missing or unreadable file is an empty store.
func (cr *CredentialsFileRepository) load() {
	data, err := os.ReadFile(cr.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			cr.logger.Warn("reading credentials file", zap.String("path", cr.path), zap.Error(err))
		}
		return
	}
	var records map[string]any
	if err := sonic.Unmarshal(data, &records); err != nil {
		cr.logger.Warn("credentials file is corrupt, starting empty",
			zap.String("path", cr.path),
			zap.Error(err),
		)
		return
	}
	for name, v := range records {
		if record, ok := v.(string); ok {
			cr.users[name] = record
			continue
		}
		cr.logger.Warn("malformed credential record", zap.String("path", cr.path), zap.String("user", name))
		cr.malformed[name] = v
	}
}

func (cr *CredentialsFileRepository) Create(ctx context.Context, cred *entity.Credential) error {
	if cred == nil {
		return errors.New("credential is nil")
	}
	cr.mu.Lock()
	defer cr.mu.Unlock()
	if cr.taken(cred.Username) {
		return errorvalues.ErrDuplicateUser
	}
	cr.users[cred.Username] = cred.Record
	if err := cr.flush(); err != nil {
		delete(cr.users, cred.Username)
		return errors.New("saving credentials error: " + err.Error())
	}
	return nil
}

func (cr *CredentialsFileRepository) FindByName(ctx context.Context, username string) (*entity.Credential, error) {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	if record, ok := cr.users[username]; ok {
		return &entity.Credential{Username: username, Record: record}, nil
	}
	if v, ok := cr.malformed[username]; ok {
		// The raw JSON text is never a "salt:hash" pair, so it fails verification.
		raw, err := sonic.MarshalString(v)
		if err != nil {
			return nil, errors.New("reading credential error: " + err.Error())
		}
		return &entity.Credential{Username: username, Record: raw}, nil
	}
	return nil, errorvalues.ErrUserNotFound
}

func (cr *CredentialsFileRepository) taken(username string) bool {
	if _, ok := cr.users[username]; ok {
		return true
	}
	_, ok := cr.malformed[username]
	return ok
}

func (cr *CredentialsFileRepository) flush() error {
	records := make(map[string]any, len(cr.users)+len(cr.malformed))
	for name, v := range cr.malformed {
		records[name] = v
	}
	for name, record := range cr.users {
		records[name] = record
	}
	data, err := sonic.ConfigStd.MarshalIndent(records, "", "    ")
	if err != nil {
		return err
	}
	return writeFileAtomic(cr.path, data)
}
