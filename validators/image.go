package validators

import (
	"errors"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/viper"
)

var (
	ErrImageTooLarge = errors.New("image is too large")
	ErrNotAnImage    = errors.New("only image files are allowed")
)

// ImageValidator checks the size of an uploaded file and sniffs its
// real content type. The file extension is not trusted. Returns the
// detected mime type on success.
func ImageValidator(fh *multipart.FileHeader) (string, error) {
	if fh.Size > viper.GetInt64("upload.max_size") {
		return "", ErrImageTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}

	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", ErrNotAnImage
	}

	return mtype.String(), nil
}
