// Package journal records the filesystem actions of a transformation pass to
// a rotating log file.
package journal

import (
	"io"
	"log"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pinit-dev/pinit/cli/tree"
)

// Opts describes the journal options.
type Opts struct {
	// Filename is the name of journal file.
	Filename string
	// MaxSize is the maximum size in megabytes of the journal file
	// before it gets rotated.
	MaxSize int
	// MaxBackups is the maximum number of old journal files to retain.
	MaxBackups int
	// MaxAge is the maximum number of days to retain old journal files
	// based on the timestamp encoded in their filename.
	MaxAge int
}

// Journal is a log.Logger decorator writing one line per applied action.
type Journal struct {
	*log.Logger
	// ljLogger adds rotation to the embedded logger, nil for custom writers.
	ljLogger *lumberjack.Logger
	// root is a project directory the actions are applied to.
	root string
}

// NewJournal creates a journal of actions applied to the project in root.
func NewJournal(opts Opts, root string) *Journal {
	ljLogger := &lumberjack.Logger{
		Filename:   opts.Filename,
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAge,
		Compress:   false,
		LocalTime:  true,
	}
	return &Journal{
		Logger:   log.New(ljLogger, "", log.LstdFlags),
		ljLogger: ljLogger,
		root:     root,
	}
}

// NewCustomJournal creates a journal writing to writer. Rotation does not
// work in this case.
func NewCustomJournal(writer io.Writer, root string, flags int) *Journal {
	return &Journal{Logger: log.New(writer, "", flags), root: root}
}

// Begin records the start of a pass.
func (journal *Journal) Begin() {
	journal.Printf("begin %s", journal.root)
}

// Record implements tree.Recorder.
func (journal *Journal) Record(plan tree.Plan) {
	journal.Printf("%s %s -> %s", plan.Action, plan.Entry.Path, plan.Destination)
}

// End records the end of a pass and its error if any.
func (journal *Journal) End(err error) {
	if err != nil {
		journal.Printf("failed %s: %s", journal.root, err)
		return
	}
	journal.Printf("done %s", journal.root)
}

// Rotate closes the existing journal file and creates a new one.
func (journal *Journal) Rotate() error {
	if journal.ljLogger == nil {
		return nil
	}
	return journal.ljLogger.Rotate()
}

// Close implements io.Closer, and closes the current journal file.
func (journal *Journal) Close() error {
	if journal.ljLogger == nil {
		return nil
	}
	return journal.ljLogger.Close()
}
