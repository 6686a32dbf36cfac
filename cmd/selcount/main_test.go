package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/skosovsky/annohelper"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

const helloPanel = `单词+汉字+数字: 3
中文汉字: 0
英文单词: 2 (10字母)
阿拉伯数字: 1 (3数字)
标点空格: 2
`

func TestRun_ArgsPlain(t *testing.T) {
	t.Parallel()
	code, out, _ := runCLI(t, "", "-style", "plain", "Hello", "World", "123")
	require.Equal(t, 0, code)
	assert.Equal(t, helloPanel, out)
}

func TestRun_Stdin(t *testing.T) {
	t.Parallel()
	code, out, _ := runCLI(t, "  Hello World 123\n", "-style", "plain")
	require.Equal(t, 0, code)
	assert.Equal(t, helloPanel, out)
}

func TestRun_JSON(t *testing.T) {
	t.Parallel()
	code, out, _ := runCLI(t, "", "-json", "你好 world 2024")
	require.Equal(t, 0, code)
	var outs []output
	require.NoError(t, json.Unmarshal([]byte(out), &outs))
	require.Len(t, outs, 1)
	assert.Equal(t, "args", outs[0].Name)
	assert.False(t, outs[0].Empty)
	assert.Equal(t, annohelper.Count("你好 world 2024"), outs[0].Result)
}

func TestRun_RawKeepsWhitespace(t *testing.T) {
	t.Parallel()
	code, out, _ := runCLI(t, " ab ", "-json", "-raw")
	require.Equal(t, 0, code)
	var outs []output
	require.NoError(t, json.Unmarshal([]byte(out), &outs))
	assert.Equal(t, 2, outs[0].Result.Punctuation)
	assert.Equal(t, 4, outs[0].Result.Total)
}

func TestRun_EmptySelection(t *testing.T) {
	t.Parallel()
	code, out, _ := runCLI(t, "   \n", "-style", "plain")
	require.Equal(t, 0, code)
	assert.Empty(t, out)

	code, out, _ = runCLI(t, "   \n", "-json")
	require.Equal(t, 0, code)
	var outs []output
	require.NoError(t, json.Unmarshal([]byte(out), &outs))
	assert.True(t, outs[0].Empty)
	assert.True(t, outs[0].Result.IsZero())
}

func TestRun_Files(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("Hello World 123"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte("中文"), 0o600))

	code, out, _ := runCLI(t, "", "-json", "-f", a, "-f", b)
	require.Equal(t, 0, code)
	var outs []output
	require.NoError(t, json.Unmarshal([]byte(out), &outs))
	require.Len(t, outs, 2)
	assert.Equal(t, a, outs[0].Name)
	assert.Equal(t, 3, outs[0].Result.Meaningful)
	assert.Equal(t, b, outs[1].Name)
	assert.Equal(t, 2, outs[1].Result.Chinese)

	code, out, _ = runCLI(t, "", "-style", "plain", "-f", a, "-f", b)
	require.Equal(t, 0, code)
	assert.Contains(t, out, "== "+a+"\n"+helloPanel)
	assert.Contains(t, out, "== "+b+"\n")
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()
	code, _, errOut := runCLI(t, "", "-f", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "nope.txt")
}

func TestRun_EnglishProfile(t *testing.T) {
	t.Parallel()
	code, out, _ := runCLI(t, "", "-style", "plain", "-env", "en", "Hello World 123")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "Words+Chinese+Numbers: 3")
	assert.Contains(t, out, "English words: 2 (10 letters)")
}

func TestRun_ProfileDir(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	manifest := "id: site\nversion: \"1\"\ntemplates:\n  count: 'M={{ .Meaningful }} T={{ .Total }}'\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "site.yaml"), []byte(manifest), 0o600))

	code, out, _ := runCLI(t, "", "-style", "plain", "-profile-dir", dir, "-profile", "site", "ab 12")
	require.Equal(t, 0, code)
	assert.Equal(t, "M=2 T=5\n", out)
}

func TestRun_UnknownProfile(t *testing.T) {
	t.Parallel()
	code, _, errOut := runCLI(t, "", "-profile", "missing", "abc")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "profile not found")
}

func TestRun_Lines(t *testing.T) {
	t.Parallel()
	code, out, _ := runCLI(t, "ab\n\n12 34\n", "-lines", "-json")
	require.Equal(t, 0, code)
	dec := json.NewDecoder(strings.NewReader(out))
	var got []output
	for dec.More() {
		var o output
		require.NoError(t, dec.Decode(&o))
		got = append(got, o)
	}
	require.Len(t, got, 3)
	assert.Equal(t, "line 1", got[0].Name)
	assert.Equal(t, 1, got[0].Result.EnglishWords)
	assert.True(t, got[1].Empty)
	assert.Equal(t, 2, got[2].Result.Numbers)
}

func TestRun_LinesPlain(t *testing.T) {
	t.Parallel()
	code, out, _ := runCLI(t, "Hello World 123\n", "-lines", "-style", "plain")
	require.Equal(t, 0, code)
	assert.Equal(t, helloPanel, out)
}

func TestRun_Shortcuts(t *testing.T) {
	t.Parallel()
	code, out, _ := runCLI(t, "", "-shortcuts", "-style", "plain")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "AGI标注快捷键指南\n"))
	assert.Contains(t, out, "删除当前行（二次确认）")
}

func TestRun_BoxStyle(t *testing.T) {
	t.Parallel()
	code, out, _ := runCLI(t, "", "-style", "box", "abc")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "单词+汉字+数字: 1")
}

func TestRun_BadFlags(t *testing.T) {
	t.Parallel()
	code, _, errOut := runCLI(t, "", "-style", "fancy")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "invalid -style")

	code, _, errOut = runCLI(t, "", "-watch")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "-watch needs -profile-dir")

	code, _, _ = runCLI(t, "", "-h")
	assert.Equal(t, 0, code)
}

func TestUseBox(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	assert.True(t, useBox("box", &buf))
	assert.False(t, useBox("plain", &buf))
	assert.False(t, useBox("auto", &buf))
}
