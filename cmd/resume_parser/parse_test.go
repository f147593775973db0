package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

// resetParseFlags restores the package-level flag variables between tests.
func resetParseFlags() {
	parseInputPath = ""
	parseOutputFile = ""
	parseSkillsFile = ""
	parseQualificationsFile = ""
	parseConfigFile = ""
	parseWorkers = 0
	parseVerbose = false
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunParse_EndToEnd(t *testing.T) {
	defer resetParseFlags()
	dir := t.TempDir()

	resume := "John Michael Smith\nSenior Software Engineer\nLocated at: Pune, Maharashtra, India\n" +
		"Phone: +91 98765 43210\nEmail: john.smith@example.com\n\nGo and SQL experience\nB.Tech in Computer Science\n"
	writeFixture(t, dir, "resume.txt", resume)
	skillsPath := writeFixture(t, dir, "skills.txt", "Go\nPython\nSQL\n")
	qualificationsPath := writeFixture(t, dir, "qualifications.txt", "B.Tech\nMBA\n")
	outPath := filepath.Join(dir, "results.json")

	parseInputPath = dir
	parseOutputFile = outPath
	parseSkillsFile = skillsPath
	parseQualificationsFile = qualificationsPath

	require.NoError(t, runParse(nil, nil))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var results []types.DocumentResult
	require.NoError(t, json.Unmarshal(data, &results))
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Result)

	assert.Equal(t, "John", results[0].Result.FirstName)
	assert.Equal(t, "919876543210", results[0].Result.PhoneNumber)
	assert.Equal(t, "john.smith@example.com", results[0].Result.PrimaryEmail)
	assert.Equal(t, []string{"Go", "SQL"}, results[0].Result.Skills)
	assert.Equal(t, []string{"B.Tech"}, results[0].Result.Qualifications)
	assert.Equal(t, "Pune", results[0].Result.City)
}

func TestRunParse_MissingVocabulariesYieldEmptyMatches(t *testing.T) {
	defer resetParseFlags()
	dir := t.TempDir()

	writeFixture(t, dir, "resume.txt", "Jane Doe\njane@example.com\n")
	outPath := filepath.Join(dir, "results.json")

	parseInputPath = dir
	parseOutputFile = outPath
	parseSkillsFile = filepath.Join(dir, "no-skills.txt")
	parseQualificationsFile = filepath.Join(dir, "no-qualifications.txt")

	require.NoError(t, runParse(nil, nil))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var results []types.DocumentResult
	require.NoError(t, json.Unmarshal(data, &results))
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Result)

	assert.Empty(t, results[0].Result.Skills)
	assert.Empty(t, results[0].Result.Qualifications)
	assert.Equal(t, "jane@example.com", results[0].Result.PrimaryEmail)
}

func TestRunParse_RequiresInput(t *testing.T) {
	defer resetParseFlags()

	err := runParse(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input path is required")
}

func TestRunParse_ConfigFileSuppliesDefaults(t *testing.T) {
	defer resetParseFlags()
	dir := t.TempDir()

	writeFixture(t, dir, "resume.txt", "Jane Doe\n")
	outPath := filepath.Join(dir, "results.json")
	configPath := writeFixture(t, dir, "config.json",
		`{"input": `+strconv.Quote(dir)+`, "output": `+strconv.Quote(outPath)+`}`)

	parseConfigFile = configPath

	require.NoError(t, runParse(nil, nil))

	_, err := os.Stat(outPath)
	assert.NoError(t, err)
}

func TestRunParse_MissingInputPathFailsValidation(t *testing.T) {
	defer resetParseFlags()

	parseInputPath = filepath.Join(t.TempDir(), "missing")

	err := runParse(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input path not found")
}
