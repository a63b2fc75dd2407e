package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/fittrack/internal/domain"
	"github.com/alexanderramin/fittrack/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	swimmingLine = "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000."
	runningLine  = "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750."
	walkingLine  = "Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500."
)

// testApp wires an App with a non-interactive terminal for CLI tests.
func testApp(t *testing.T) *App {
	t.Helper()
	return &App{
		Tracker:       service.NewTrackerService(),
		IsInteractive: func() bool { return false },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writePackageFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// --- Root command: sample run ---

func TestRootCmd_PrintsSamples(t *testing.T) {
	out, err := executeCmd(t, testApp(t))
	require.NoError(t, err)
	assert.Equal(t, swimmingLine+"\n"+runningLine+"\n"+walkingLine+"\n", out)
}

func TestRootCmd_RejectsArguments(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "bogus")
	assert.Error(t, err)
}

// --- show ---

func TestShowCmd_Running(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "show", "RUN", "15000", "1", "75")
	require.NoError(t, err)
	assert.Equal(t, runningLine+"\n", out)
}

func TestShowCmd_Swimming(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "show", "SWM", "720", "1", "80", "25", "40")
	require.NoError(t, err)
	assert.Equal(t, swimmingLine+"\n", out)
}

func TestShowCmd_UnknownCode(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "show", "BIK", "100", "1", "70")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownWorkoutCode)
	assert.Empty(t, out, "no summary is built for an unknown code")
}

func TestShowCmd_InvalidNumber(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "show", "RUN", "lots", "1", "75")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid value "lots"`)
}

func TestShowCmd_WrongArity(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "show", "WLK", "9000", "1", "75")
	assert.ErrorIs(t, err, domain.ErrInvalidArity)
}

func TestShowCmd_RequiresCode(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "show")
	assert.Error(t, err)
}

// --- run ---

func TestRunCmd_JSONFile(t *testing.T) {
	path := writePackageFile(t, "packages.json", `{"workouts": [
		{"code": "WLK", "data": [9000, 1, 75, 180]},
		{"code": "RUN", "data": [15000, 1, 75]}
	]}`)

	out, err := executeCmd(t, testApp(t), "run", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, walkingLine+"\n"+runningLine+"\n", out)
}

func TestRunCmd_YAMLFile(t *testing.T) {
	path := writePackageFile(t, "packages.yml", "workouts:\n  - code: SWM\n    data: [720, 1, 80, 25, 40]\n")

	out, err := executeCmd(t, testApp(t), "run", "-f", path)
	require.NoError(t, err)
	assert.Equal(t, swimmingLine+"\n", out)
}

func TestRunCmd_UnknownCodeStopsBeforeAnyOutput(t *testing.T) {
	path := writePackageFile(t, "packages.json", `{"workouts": [
		{"code": "RUN", "data": [15000, 1, 75]},
		{"code": "BIK", "data": [1, 1, 1]}
	]}`)

	out, err := executeCmd(t, testApp(t), "run", "--file", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownWorkoutCode)
	assert.Empty(t, out)
}

func TestRunCmd_ValidationErrorsJoined(t *testing.T) {
	path := writePackageFile(t, "packages.json", `{"workouts": [
		{"code": "RUN", "data": [15000, 0, 75]},
		{"code": "SWM", "data": [720, 1, 80]}
	]}`)

	_, err := executeCmd(t, testApp(t), "run", "--file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workouts[0].data[1]: duration must be positive")
	assert.ErrorIs(t, err, domain.ErrInvalidArity)
}

func TestRunCmd_EmptyCode(t *testing.T) {
	path := writePackageFile(t, "packages.json", `{"workouts": [
		{"code": "", "data": [15000, 1, 75]}
	]}`)

	out, err := executeCmd(t, testApp(t), "run", "--file", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownWorkoutCode)
	assert.Empty(t, out)
}

func TestRunCmd_RejectsNonFiniteValues(t *testing.T) {
	path := writePackageFile(t, "packages.yaml", `workouts:
  - code: RUN
    data: [15000, .nan, 75]
  - code: SWM
    data: [720, 1, 80, .inf, 40]
`)

	out, err := executeCmd(t, testApp(t), "run", "--file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workouts[0].data[1]: duration must be positive")
	assert.Contains(t, err.Error(), "workouts[1].data[3]: pool length must be positive")
	assert.Empty(t, out)
}

func TestRunCmd_RequiresFile(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "run")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file")
}

// --- report ---

func TestReportCmd_Samples(t *testing.T) {
	out, err := executeCmd(t, testApp(t), "report")
	require.NoError(t, err)
	assert.Contains(t, out, "WORKOUT REPORT")
	assert.Contains(t, out, "SportsWalking")
	assert.Contains(t, out, "1193.250")
}

func TestReportCmd_File(t *testing.T) {
	path := writePackageFile(t, "packages.json", `{"workouts": [{"code": "RUN", "data": [15000, 1, 75]}]}`)

	out, err := executeCmd(t, testApp(t), "report", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "699.750")
	assert.NotContains(t, out, "Swimming")
}

// --- enter ---

func TestEnterCmd_NonInteractive(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "enter")
	assert.ErrorIs(t, err, errNotInteractive)
}

func TestApp_NilInteractiveMeansFalse(t *testing.T) {
	app := &App{Tracker: service.NewTrackerService()}
	assert.False(t, app.interactive())
}

func TestUnknownCodeMessage(t *testing.T) {
	assert.True(t, strings.HasPrefix(UnknownCodeMessage, "Код тренировки не найден"))
}
