package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer_ReadKey(t *testing.T) {
	assert := assert.New(t)

	buf := &Buffer{Keys: []byte("ab")}

	key, err := buf.ReadKey()
	assert.NoError(err)
	assert.Equal(byte('a'), key)

	key, err = buf.ReadKey()
	assert.NoError(err)
	assert.Equal(byte('b'), key)

	// Script exhausted.
	_, err = buf.ReadKey()
	assert.ErrorIs(err, ErrKeyEOF)
}

func TestBuffer_Poll(t *testing.T) {
	assert := assert.New(t)

	buf := &Buffer{Keys: []byte{'x'}}

	key, ok := buf.Poll()
	assert.True(ok)
	assert.Equal(byte('x'), key)

	_, ok = buf.Poll()
	assert.False(ok)
}

func TestBuffer_Write(t *testing.T) {
	assert := assert.New(t)

	buf := &Buffer{}

	n, err := buf.Write([]byte("Hello"))
	assert.NoError(err)
	assert.Equal(5, n)

	n, err = buf.Write([]byte(" World"))
	assert.NoError(err)
	assert.Equal(6, n)

	assert.Equal("Hello World", buf.Output.String())
}
