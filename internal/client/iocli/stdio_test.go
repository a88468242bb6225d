package iocli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioWith(strings.NewReader(""), &out)

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s", 1, "abc")
	_, err := stdio.Write([]byte("!"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc!", out.String())
}

func TestReadInput(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioWith(strings.NewReader("  user input \nsecond\n"), &out)

	result, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, "user input", result)
	assert.Equal(t, "Prompt: ", out.String())

	// буфер чтения сохраняется между вызовами
	result, err = stdio.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "second", result)
}

func TestReadInput_LastLineWithoutNewline(t *testing.T) {
	stdio := NewStdioWith(strings.NewReader("tail"), &bytes.Buffer{})

	result, err := stdio.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "tail", result)

	_, err = stdio.ReadInput("")
	assert.Error(t, err)
}

// ReadSecret вне терминала читает обычную строку
func TestReadSecret_NotTerminal(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioWith(strings.NewReader("s3cr3t\n"), &out)

	result, err := stdio.ReadSecret("API key: ")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", result)
	assert.Equal(t, "API key: ", out.String())
}
