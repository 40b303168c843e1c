package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestValidate_StdinJSON(t *testing.T) {
	out, _, err := execute(t, `{"username":"Alice","userid":"1"}`, "validate", "--class", "User")
	require.NoError(t, err)
	require.Equal(t, `{"userid":"1","username":"Alice"}`+"\n", out)
}

func TestValidate_FileYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "msg.yaml")
	doc := "user:\n  userid: \"38133501152442\"\n  username: Cheetah\nbody: asd\ntimestamp: 1709400461241\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, _, err := execute(t, "", "validate", "-c", "Message", "-f", "yaml", path)
	require.NoError(t, err)
	require.Equal(t, `{"user":{"userid":"38133501152442","username":"Cheetah"},"body":"asd","timestamp":1709400461241}`+"\n", out)
}

func TestValidate_ReportsIssue(t *testing.T) {
	_, errOut, err := execute(t, `{"userid":"1"}`, "validate", "--class", "User")
	require.Error(t, err)
	require.Contains(t, errOut, "missing_field at /username")
}

func TestValidate_DuplicateKeyPolicy(t *testing.T) {
	in := `{"userid":"1","userid":"2","username":"Alice"}`
	_, errOut, err := execute(t, in, "validate", "--class", "User")
	require.Error(t, err)
	require.Contains(t, errOut, "duplicate_key at /userid")

	out, errOut, err := execute(t, in, "validate", "--class", "User", "--dup", "warn")
	require.NoError(t, err)
	require.Equal(t, `{"userid":"2","username":"Alice"}`+"\n", out)
	require.Contains(t, errOut, "parse issue")
}

func TestValidate_UnknownClass(t *testing.T) {
	_, _, err := execute(t, `{}`, "validate", "--class", "Nope")
	require.ErrorContains(t, err, `unknown class "Nope"`)
}

func TestSchema_PrintsPropertyOrder(t *testing.T) {
	out, _, err := execute(t, "", "schema", "--class", "AuthObject")
	require.NoError(t, err)
	require.Contains(t, out, `"title": "AuthObject"`)
	require.Contains(t, out, "\"propertyOrder\": [\n    \"userid\",\n    \"username\",\n    \"lobby_id\"\n  ]")
}

func TestClasses_Lists(t *testing.T) {
	out, _, err := execute(t, "", "classes")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Contains(t, lines, "User")
	require.Contains(t, lines, "LobbySnapshot")
	require.IsIncreasing(t, lines)
}
