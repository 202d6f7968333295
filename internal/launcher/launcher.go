// Package launcher runs a catalog game as a child process and reports
// the completed session to the statistics tracker. Each game is an
// independent program: it inherits the terminal, runs until its exit
// key, and may report a final score through the score-file handshake.
//
// Session duration is wall-clock time around the blocking child wait.
// There is no partial-session checkpointing: a killed hub records
// nothing for the session in flight.
package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gameverse/internal/metadata"
	"github.com/vovakirdan/gameverse/internal/storage"
)

// ScoreFileEnv names the environment variable through which a game
// receives the path it may write its final score to. Games that never
// heard of the handshake simply score 0.
const ScoreFileEnv = "GAMEVERSE_SCORE_FILE"

// SessionRecorder receives exactly one call per completed session.
// *profile.Manager satisfies it.
type SessionRecorder interface {
	RecordGameSession(gameID string, durationSeconds, score int) error
}

// Launcher spawns games from the games folder.
type Launcher struct {
	GamesDir string
	Recorder SessionRecorder

	// Ledger is optional; when set, every session is also appended to
	// the SQLite history, best-effort.
	Ledger      *storage.Store
	ProfileName string

	Logger *log.Logger
}

// Result summarizes one completed session.
type Result struct {
	DurationSeconds int
	Score           int
}

// Launch runs the given game to completion and records the session.
// The child inherits stdin/stdout/stderr so TUI games own the
// terminal. A nonzero child exit is logged, not fatal: the session
// still happened and is still recorded.
func (l *Launcher) Launch(game metadata.GameMetadata) (Result, error) {
	path := filepath.Join(l.GamesDir, filepath.FromSlash(game.File))
	if _, err := os.Stat(path); err != nil {
		return Result{}, fmt.Errorf("launcher: game file %s: %w", path, err)
	}

	scorePath, cleanup, err := scoreFile(game.ID)
	if err != nil {
		return Result{}, err
	}
	defer cleanup()

	cmd := exec.Command("go", "run", path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), ScoreFileEnv+"="+scorePath)

	l.logger().Info("launching game", "id", game.ID, "file", game.File)

	start := time.Now()
	runErr := cmd.Run()
	duration := int(time.Since(start).Seconds())

	if runErr != nil {
		l.logger().Warn("game exited with error", "id", game.ID, "error", runErr)
	}

	score := readScore(scorePath)
	res := Result{DurationSeconds: duration, Score: score}

	if l.Recorder != nil {
		if err := l.Recorder.RecordGameSession(game.ID, duration, score); err != nil {
			return res, fmt.Errorf("launcher: cannot record session: %w", err)
		}
	}

	if l.Ledger != nil {
		if _, err := l.Ledger.SaveSession(l.ProfileName, game.ID, duration, score); err != nil {
			// History is best-effort; the JSON stats already hold the
			// session.
			l.logger().Warn("cannot append session to ledger", "id", game.ID, "error", err)
		}
	}

	l.logger().Info("session recorded", "id", game.ID, "duration_secs", duration, "score", score)
	return res, nil
}

func (l *Launcher) logger() *log.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return log.Default()
}

// scoreFile creates the temp file for the score handshake.
func scoreFile(gameID string) (string, func(), error) {
	f, err := os.CreateTemp("", "gameverse-"+gameID+"-*.score")
	if err != nil {
		return "", nil, fmt.Errorf("launcher: cannot create score file: %w", err)
	}
	path := f.Name()
	f.Close()
	return path, func() { os.Remove(path) }, nil
}

// readScore parses the score a game left behind. Missing file, empty
// file, or garbage all mean score 0; negative scores are clamped to 0.
func readScore(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		return 0
	}
	return score
}
