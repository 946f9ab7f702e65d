package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/xlsx2md"
	"github.com/bjaus/xlsx2md/internal/xlsxtest"
)

const peopleCSV = "Name,Age\nAlice,30\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestConvert(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "people.csv", peopleCSV)

	tests := map[string]struct {
		args []string
		want string
	}{
		"default": {
			args: []string{path},
			want: "| Name  | Age  |\n| :---- | :--- |\n| Alice | 30   |\n",
		},
		"grid right aligned": {
			args: []string{path, "--style", "grid", "-a", "left,right"},
			want: "+-------+-----+\n| Name  | Age |\n+=======+=====+\n| Alice |  30 |\n+-------+-----+\n",
		},
		"minimal": {
			args: []string{path, "-s", "minimal"},
			want: "Name  Age\n---------\nAlice 30 \n",
		},
		"max width": {
			args: []string{path, "--max-width", "3", "--style", "minimal"},
			want: "Nam Age\n-------\nAli 30 \n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			stdout, stderr, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestConvertStdin(t *testing.T) {
	t.Parallel()
	for _, args := range [][]string{nil, {"-"}} {
		stdout, _, err := execute(t, "a;b\n1;\n", append(args, "--empty-cell", "-")...)
		require.NoError(t, err)
		assert.Equal(t, "| a    | b    |\n| :--- | :--- |\n| 1    | -    |\n", stdout)
	}
}

func TestConvertEmptyInput(t *testing.T) {
	t.Parallel()
	stdout, stderr, err := execute(t, "")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "no data to render")
}

func TestConvertOutputFile(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "people.csv", peopleCSV)
	out := filepath.Join(t.TempDir(), "people.md")

	stdout, stderr, err := execute(t, "", path, "-o", out, "-v")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "wrote table")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "| Name  | Age  |\n| :---- | :--- |\n| Alice | 30   |\n", string(data))
}

func TestConvertErrors(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "people.csv", peopleCSV)

	tests := map[string]struct {
		args []string
		msg  string
	}{
		"unknown style":    {args: []string{path, "--style", "fancy"}, msg: `unknown style \"fancy\"`},
		"bad delimiter":    {args: []string{path, "--delimiter", ";;"}, msg: "invalid delimiter"},
		"unsupported file": {args: []string{writeFile(t, "notes.pdf", "x")}, msg: "unsupported source"},
		"missing file":     {args: []string{filepath.Join(t.TempDir(), "missing.csv")}, msg: "missing.csv"},
		"too many args":    {args: []string{path, path}, msg: "accepts at most 1 arg"},
		"unknown encoding": {args: []string{path, "--encoding", "klingon"}, msg: "klingon"},
		"missing config":   {args: []string{path, "--config", "/nonexistent/xlsx2md.yaml"}, msg: "read config"},
		"bad config value": {args: []string{path, "--config", writeFile(t, "c.yaml", "max-width: wide\n")}, msg: "max-width"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			stdout, stderr, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "conversion failed")
			assert.Contains(t, stderr, tt.msg)
		})
	}
}

func TestConvertUnknownStyleIsInvalidArgument(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "people.csv", peopleCSV)
	_, _, err := execute(t, "", path, "--style", "fancy")
	require.ErrorIs(t, err, xlsx2md.ErrInvalidArgument)
}

func TestConvertEnvironment(t *testing.T) {
	path := writeFile(t, "people.csv", peopleCSV)
	t.Setenv("XLSX2MD_STYLE", "minimal")
	t.Setenv("XLSX2MD_EMPTY_CELL", "n/a")

	stdout, _, err := execute(t, "", path)
	require.NoError(t, err)
	assert.Equal(t, "Name  Age\n---------\nAlice 30 \n", stdout)

	// Flags win over the environment.
	stdout, _, err = execute(t, "", path, "--style", "default")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "| Name"))
}

func TestConvertConfigFile(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "people.csv", "Name,Age,City\nAlice,30,\n")
	config := writeFile(t, "xlsx2md.yaml", "style: grid\nalign: [left, right]\nempty-cell: \"?\"\n")

	stdout, _, err := execute(t, "", path, "--config", config)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"+-------+-----+------+",
		"| Name  | Age | City |",
		"+=======+=====+======+",
		"| Alice |  30 | ?    |",
		"+-------+-----+------+",
	}, "\n")+"\n", stdout)

	stdout, _, err = execute(t, "", path, "--config", config, "--style", "minimal", "--align", "left")
	require.NoError(t, err)
	assert.Equal(t, "Name  Age City\n--------------\nAlice 30  ?   \n", stdout)
}

func TestSheetsCommand(t *testing.T) {
	t.Parallel()
	book := xlsxtest.Build(t, 1,
		xlsxtest.Sheet{Name: "Summary", Cells: []xlsxtest.Cell{{Ref: "A1", Str: "Total"}}},
		xlsxtest.Sheet{Name: "Sales", Cells: []xlsxtest.Cell{
			{Ref: "A1", Str: "Region"}, {Ref: "B1", Str: "Amount"},
			{Ref: "A2", Str: "North"}, {Ref: "B2", Num: "120"},
		}},
	)
	path := filepath.Join(t.TempDir(), "book.xlsx")
	require.NoError(t, os.WriteFile(path, book, 0o600))

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := execute(t, "", "sheets", path, "--output-format", "yaml")
		require.NoError(t, err)
		assert.Equal(t, `- name: Summary
  index: 0
  active: false
  rows: 1
  columns: 1
- name: Sales
  index: 1
  active: true
  rows: 2
  columns: 2
`, stdout)
	})

	t.Run("table", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := execute(t, "", "sheets", path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		require.Len(t, lines, 6)
		assert.Contains(t, lines[1], "Name")
		assert.Contains(t, lines[3], "Summary")
		assert.Contains(t, lines[4], "Sales")
		assert.Contains(t, lines[4], "*")
		assert.NotContains(t, lines[3], "*")
	})

	t.Run("converts active sheet", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := execute(t, "", path)
		require.NoError(t, err)
		assert.Equal(t, "| Region | Amount |\n| :----- | :----- |\n| North  | 120    |\n", stdout)
	})

	t.Run("converts named sheet", func(t *testing.T) {
		t.Parallel()
		stdout, _, err := execute(t, "", path, "--sheet", "Summary", "-s", "minimal")
		require.NoError(t, err)
		assert.Equal(t, "Total\n-----\n", stdout)
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()
		_, stderr, err := execute(t, "", "sheets", path, "--output-format", "xml")
		require.ErrorIs(t, err, xlsx2md.ErrInvalidArgument)
		assert.Contains(t, stderr, "unknown output format")
	})

	t.Run("csv is not a workbook", func(t *testing.T) {
		t.Parallel()
		_, _, err := execute(t, "", "sheets", writeFile(t, "people.csv", peopleCSV))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a workbook")
	})
}

func TestParseDelimiter(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    rune
		wantErr bool
	}{
		"empty detects": {input: "", want: 0},
		"tab name":      {input: "tab", want: '\t'},
		"escaped tab":   {input: `\t`, want: '\t'},
		"semicolon":     {input: ";", want: ';'},
		"multibyte":     {input: "§", want: '§'},
		"two chars":     {input: ";;", wantErr: true},
		"quote":         {input: `"`, wantErr: true},
		"newline":       {input: "\n", wantErr: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := parseDelimiter(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, xlsx2md.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFlagValue(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "left,right", flagValue([]any{"left", "right"}))
	assert.Equal(t, "a,b", flagValue([]string{"a", "b"}))
	assert.Equal(t, "12", flagValue(12))
	assert.Equal(t, "true", flagValue(true))
}
