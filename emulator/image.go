package emulator

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
)

// Image is a loadable program image: an origin address and the words
// stored from there.
type Image struct {
	Origin uint16
	Words  []uint16
}

// ReadImage parses a big-endian program image. The first word is the
// load origin, the remaining words are the contents.
func ReadImage(file io.Reader) (img *Image, err error) {
	data, err := io.ReadAll(file)
	if err != nil {
		err = errors.Join(ErrImageFormat, err)
		return
	}

	if len(data)%2 != 0 {
		err = errors.Join(ErrImageFormat, ErrImageOdd)
		return
	}

	if len(data) < 2 {
		err = errors.Join(ErrImageFormat, ErrImageTruncated)
		return
	}

	img = &Image{
		Origin: binary.BigEndian.Uint16(data[0:2]),
		Words:  make([]uint16, 0, (len(data)-2)/2),
	}

	for at := 2; at < len(data); at += 2 {
		img.Words = append(img.Words, binary.BigEndian.Uint16(data[at:at+2]))
	}

	return
}

// LoadImageFile reads a program image from a file.
func LoadImageFile(path string) (img *Image, err error) {
	file, err := os.Open(path)
	if err != nil {
		err = errors.Join(ErrImageFormat, err)
		return
	}
	defer file.Close()

	return ReadImage(file)
}
