package cli_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braydenokley13-ux/T101-M1-L2/internal/adapters/cli"
	"github.com/braydenokley13-ux/T101-M1-L2/internal/domain/shared"
)

// cliEnv isolates a test run: its own HOME, database file and lock file
type cliEnv struct {
	t          *testing.T
	dir        string
	configPath string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	return newCLIEnvWithDatabase(t, func(dir string) string {
		return filepath.Join(dir, "taxgame.db")
	})
}

// newCLIEnvWithDatabase lets a test choose where the sqlite file should live
func newCLIEnvWithDatabase(t *testing.T, dbPath func(dir string) string) *cliEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)

	configPath := filepath.Join(dir, "config.yaml")
	contents := fmt.Sprintf(`database:
  type: sqlite
  path: %s
logging:
  level: error
game:
  lock_file: %s
`, dbPath(dir), filepath.Join(dir, "taxgame.lock"))
	require.NoError(t, os.WriteFile(configPath, []byte(contents), 0644))

	return &cliEnv{t: t, dir: dir, configPath: configPath}
}

func (e *cliEnv) run(args ...string) (string, error) {
	return e.runWithInput("", args...)
}

func (e *cliEnv) runWithInput(input string, args ...string) (string, error) {
	e.t.Helper()
	cmd := cli.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(append([]string{"--config", e.configPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (e *cliEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	require.NoError(e.t, err, "taxgame %s\n%s", strings.Join(args, " "), out)
	return out
}

func TestTeamsCommand(t *testing.T) {
	env := newCLIEnv(t)

	out := env.mustRun("teams")

	assert.Contains(t, out, "Los Angeles Lakers")
	assert.Contains(t, out, "Milwaukee Bucks")
	assert.Contains(t, out, "San Antonio Spurs")
}

func TestRosterCommand_AcceptsAbbreviation(t *testing.T) {
	env := newCLIEnv(t)

	out := env.mustRun("roster", "SAS")

	assert.Contains(t, out, "San Antonio Spurs (SAS)")
	assert.Contains(t, out, "Victor Wembanyama")
}

func TestPlayersCommand_Filters(t *testing.T) {
	env := newCLIEnv(t)

	out := env.mustRun("players", "--tier", "rookie", "--nba-team", "sas")

	assert.Contains(t, out, "Stephon Castle")
	assert.Contains(t, out, "Sidy Cissoko")
	assert.NotContains(t, out, "Keldon Johnson")
	assert.NotContains(t, out, "Victor Wembanyama")
}

func TestPlayersCommand_InvalidTier(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.run("players", "--tier", "legend")

	var validationErr *shared.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestSeasonFlowAcrossInvocations(t *testing.T) {
	// Arrange
	env := newCLIEnv(t)

	// Act
	start := env.mustRun("start", "spurs")
	scenario := env.mustRun("scenario")
	for _, choice := range []string{"sign_chris_paul", "sign_bruce_brown", "add_monk"} {
		env.mustRun("choose", choice)
	}
	last := env.mustRun("choose", "add_smart")
	status := env.mustRun("status")
	ending := env.mustRun("ending")

	// Assert
	assert.Contains(t, start, "Welcome to the San Antonio Spurs front office")
	assert.Contains(t, scenario, "Round 1 of 4")
	assert.Contains(t, scenario, "sign_chris_paul")
	assert.Contains(t, last, "The season is over")
	assert.Contains(t, status, "round final")
	assert.Contains(t, status, "$137.0M")
	assert.Contains(t, ending, "Championship Run")
	assert.Contains(t, ending, "GM rating: A (85)")
	assert.Contains(t, ending, "NBA-ELITE-GM-2026")
	assert.NotContains(t, ending, "Season still in progress")
}

func TestEndingCommand_PreviewsMidSeason(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("start", "spurs")

	out := env.mustRun("ending")

	assert.Contains(t, out, "Season still in progress")
	assert.NotContains(t, out, "Claim code")
}

func TestChooseCommand_InvalidChoiceKeepsState(t *testing.T) {
	// Arrange
	env := newCLIEnv(t)
	env.mustRun("start", "spurs")

	// Act
	_, err := env.run("choose", "trade_for_lebron")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrInvalidChoice)
	assert.Contains(t, env.mustRun("status"), "round 1/4")
}

func TestCommands_WithoutGame(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.run("scenario")
	assert.ErrorIs(t, err, shared.ErrNoActiveScenario)

	_, err = env.run("status")
	assert.ErrorIs(t, err, shared.ErrNoActiveGame)

	_, err = env.run("start", "knicks")
	assert.ErrorIs(t, err, shared.ErrInvalidTeam)
}

func TestResetCommand_ClearsSave(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("start", "bucks")
	assert.Contains(t, env.mustRun("load"), "Loaded game saved at")

	out := env.mustRun("reset")

	assert.Contains(t, out, "Game reset.")
	assert.Contains(t, env.mustRun("load"), "No saved game")
}

func TestSaveAndClearSave(t *testing.T) {
	env := newCLIEnv(t)
	env.mustRun("start", "lakers")

	assert.Contains(t, env.mustRun("save"), "Saved to slot nba_tax_game_save")
	assert.Contains(t, env.mustRun("clear-save"), "Cleared save slot nba_tax_game_save")
	assert.Contains(t, env.mustRun("load"), "No saved game")
}

func TestTutorialCommand(t *testing.T) {
	env := newCLIEnv(t)

	first := env.mustRun("tutorial")
	completed := env.mustRun("tutorial", "--complete")
	second := env.mustRun("tutorial")

	assert.Contains(t, first, "How the luxury tax works")
	assert.Contains(t, first, "tutorial --complete")
	assert.Contains(t, completed, "Tutorial marked complete.")
	assert.Contains(t, second, "Tutorial already completed.")
}

func TestPlayCommand_FullSeason(t *testing.T) {
	env := newCLIEnv(t)
	input := "status\n9\nsign_chris_paul\n2\nadd_monk\nadd_smart\n"

	out, err := env.runWithInput(input, "play", "spurs")

	require.NoError(t, err, out)
	assert.Contains(t, out, "Welcome to the San Antonio Spurs front office")
	assert.Contains(t, out, "Pick a number between 1 and 3.")
	assert.Contains(t, out, "Championship Run")
	_, statErr := os.Stat(filepath.Join(env.dir, "taxgame.lock"))
	assert.True(t, os.IsNotExist(statErr), "lock file released")
}

func TestPlayCommand_QuitAndResume(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.runWithInput("sign_chris_paul\nquit\n", "play", "spurs")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Game saved. Resume with 'taxgame play --resume'.")

	out, err = env.runWithInput("bogus\nquit\n", "play", "--resume")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Round 2 of 4")
	assert.Contains(t, out, `"bogus" is not one of this round's choices.`)
}

func TestPlayCommand_UnreachableDatabaseStillPlays(t *testing.T) {
	// Arrange
	env := newCLIEnvWithDatabase(t, func(dir string) string {
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0644))
		return filepath.Join(blocker, "taxgame.db")
	})
	input := "sign_chris_paul\nsign_bruce_brown\nadd_monk\nadd_smart\n"

	// Act
	out, err := env.runWithInput(input, "play", "spurs")

	// Assert
	require.NoError(t, err, out)
	assert.Contains(t, out, "Welcome to the San Antonio Spurs front office")
	assert.Equal(t, 1, strings.Count(out, "Progress is not being saved"))
	assert.Contains(t, out, "Championship Run")
	assert.Contains(t, out, "GM rating: A (85)")
}

func TestCommands_UnreachableDatabase(t *testing.T) {
	env := newCLIEnvWithDatabase(t, func(dir string) string {
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0644))
		return filepath.Join(blocker, "taxgame.db")
	})

	start := env.mustRun("start", "bucks")
	assert.Contains(t, start, "Welcome to the Milwaukee Bucks front office")
	assert.Contains(t, start, "Progress is not being saved")

	quit, err := env.runWithInput("quit\n", "play", "spurs")
	require.NoError(t, err, quit)
	assert.Contains(t, quit, "Leaving without a save.")

	_, err = env.run("save")
	assert.ErrorIs(t, err, shared.ErrNoActiveGame)

	_, err = env.run("clear-save")
	assert.ErrorIs(t, err, shared.ErrPersistenceUnavailable)
}

func TestPlayCommand_ResumeWithoutSave(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.runWithInput("", "play", "--resume")

	require.NoError(t, err)
	assert.Contains(t, out, "No saved game to resume")
}

func TestConfigDefaultTeam(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.run("start")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no team specified")

	assert.Contains(t, env.mustRun("config", "set-team", "MIL"), "Default team set to Milwaukee Bucks (bucks)")
	assert.Contains(t, env.mustRun("config", "show"), "Default Team:     bucks")
	assert.Contains(t, env.mustRun("start"), "Welcome to the Milwaukee Bucks front office")

	_, err = env.run("config", "set-team", "knicks")
	assert.ErrorIs(t, err, shared.ErrInvalidTeam)

	assert.Contains(t, env.mustRun("config", "clear-team"), "Default team cleared")
	assert.Contains(t, env.mustRun("config", "show"), "(not set)")
}
