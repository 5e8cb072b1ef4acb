package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"cfpr-go/internal/config"
	"cfpr-go/internal/database"
	"cfpr-go/internal/encryption"
	"cfpr-go/internal/fs"
	"cfpr-go/internal/prompt"
	"cfpr-go/internal/recorder"
)

const (
	// PasswordPrompt is printed on its own line before the password is read.
	PasswordPrompt = "Password: "

	// PassphrasePrompt is printed before the age passphrase is read.
	PassphrasePrompt = "Passphrase: "
)

// Options carries the per-invocation inputs of a RecorderApp.
// Nil streams default to the process's standard streams.
type Options struct {
	Operation string // command being run, e.g. "Query" or "Save"
	In        io.Reader
	Out       io.Writer
	Err       io.Writer
	Verbose   bool // mirror log records to Err
}

// RecorderApp is the application layer between the CLI and RecorderService.
// It constructs all dependencies from config, exposes high-level operations
// that accept raw string paths, and releases the store and log file on Close.
//
// The store is opened only once the target file has been fingerprinted, so a
// file that cannot be read leaves the store untouched.
type RecorderApp struct {
	cfg       *config.Config
	db        *database.SQLiteDatabase
	prompter  *prompt.Prompter
	fp        *recorder.Fingerprinter
	sealer    recorder.Sealer
	service   *recorder.RecorderService
	logger    recorder.Logger
	logCloser io.Closer
	clock     recorder.Clock
	op        *Operation
}

// NewRecorderApp creates a fully wired RecorderApp from the given config.
// The caller must call Close when done.
func NewRecorderApp(cfg *config.Config, opts Options) (*RecorderApp, error) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}

	clock := recorder.RealClock{}
	op := NewOperation(opts.Operation, recorder.UUIDGenerator{}, clock)

	logger, logCloser, err := newLogger(cfg, op.ID, opts.Verbose, opts.Err)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	prompter := prompt.New(opts.In, opts.Out, opts.Err)
	sealer, err := encryption.NewSealerFromConfig(cfg.Encryption, func() (string, error) {
		return prompter.ReadSecret(PassphrasePrompt)
	})
	if err != nil {
		closeQuietly(logCloser)
		return nil, fmt.Errorf("creating sealer: %w", err)
	}

	logger.Info("operation started", "operation", op.Name, "store", cfg.Database.Path, "encryption", cfg.Encryption.Type)

	return &RecorderApp{
		cfg:       cfg,
		prompter:  prompter,
		fp:        recorder.NewFingerprinter(fs.NewOSFilesystemManager(), logger),
		sealer:    sealer,
		logger:    logger,
		logCloser: logCloser,
		clock:     clock,
		op:        op,
	}, nil
}

// openStore opens the record store and ensures its schema on first use.
// Failures wrap recorder.ErrStoreUnavailable.
func (a *RecorderApp) openStore() (*recorder.RecorderService, error) {
	if a.service != nil {
		return a.service, nil
	}

	db, err := database.NewDatabaseFromConfig(a.cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	a.db = db
	a.service = recorder.NewRecorderService(db, a.sealer, a.logger, a.clock)
	a.logger.Debug("store opened", "path", db.Path())
	return a.service, nil
}

// Query fingerprints the file at rawPath and returns the earliest record for
// it, or nil when there is none.
func (a *RecorderApp) Query(rawPath string) (*recorder.FileRecord, error) {
	fp, err := a.fp.Fingerprint(rawPath)
	if err != nil {
		return nil, a.fail(err)
	}

	svc, err := a.openStore()
	if err != nil {
		return nil, a.fail(err)
	}

	record, err := svc.Lookup(fp)
	if err != nil {
		return nil, a.fail(err)
	}
	return record, nil
}

// Save fingerprints the file at rawPath, prompts for a password and stores it.
// The prompt is only shown once the file has been read and the store opened.
// The line entered is stored exactly as read, terminator included.
func (a *RecorderApp) Save(rawPath string) (*recorder.FileRecord, error) {
	fp, err := a.fp.Fingerprint(rawPath)
	if err != nil {
		return nil, a.fail(err)
	}

	svc, err := a.openStore()
	if err != nil {
		return nil, a.fail(err)
	}

	password, err := a.prompter.ReadLine(PasswordPrompt)
	if err != nil {
		return nil, a.fail(fmt.Errorf("reading password: %w", err))
	}

	record, err := svc.Save(fp, password)
	if err != nil {
		return nil, a.fail(err)
	}
	return record, nil
}

// History fingerprints the file at rawPath and returns all of its records,
// oldest first, with passwords left as stored.
func (a *RecorderApp) History(rawPath string) ([]*recorder.FileRecord, error) {
	fp, err := a.fp.Fingerprint(rawPath)
	if err != nil {
		return nil, a.fail(err)
	}

	svc, err := a.openStore()
	if err != nil {
		return nil, a.fail(err)
	}

	records, err := svc.History(fp)
	if err != nil {
		return nil, a.fail(err)
	}
	return records, nil
}

// Backup writes a consistent copy of the store to destPath, which must not
// exist yet.
func (a *RecorderApp) Backup(destPath string) error {
	if _, err := os.Stat(destPath); err == nil {
		return a.fail(fmt.Errorf("backup destination already exists: %s", destPath))
	}

	svc, err := a.openStore()
	if err != nil {
		return a.fail(err)
	}
	if err := svc.Backup(destPath); err != nil {
		return a.fail(err)
	}
	return nil
}

// Close finalizes the operation and closes all resources.
func (a *RecorderApp) Close() error {
	a.logger.Info("operation finished",
		"operation", a.op.Name, "status", a.op.Status, "elapsed", a.op.Elapsed(a.clock))

	var firstErr error
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			firstErr = fmt.Errorf("closing database: %w", err)
		}
	}
	if a.logCloser != nil {
		if err := a.logCloser.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("closing log file: %w", err)
		}
	}
	return firstErr
}

// fail marks the operation as failed and logs err. A file that cannot be read
// is an expected outcome and is logged as a warning.
func (a *RecorderApp) fail(err error) error {
	a.op.Fail()
	if errors.Is(err, recorder.ErrFileUnavailable) {
		a.logger.Warn("file unavailable", "error", err)
	} else {
		a.logger.Error("operation failed", "operation", a.op.Name, "error", err)
	}
	return err
}

func closeQuietly(c io.Closer) {
	if c != nil {
		c.Close()
	}
}
