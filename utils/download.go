package utils

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// DownloadImage downloads the image from the internet and saves it into a
// temporary file. The caller owns the returned file and its removal.
func DownloadImage(uri string) (*os.File, error) {
	res, err := http.Get(uri)
	if err != nil {
		return nil, fmt.Errorf("unable to download the image file from URI %s: %w", uri, err)
	}
	defer res.Body.Close()

	tmpfile, err := os.CreateTemp("", "icongen")
	if err != nil {
		return nil, fmt.Errorf("unable to create a temporary file: %w", err)
	}

	if _, err := io.Copy(tmpfile, res.Body); err != nil {
		return nil, fmt.Errorf("unable to copy the source URI into the destination file: %w", err)
	}

	ctype, err := DetectContentType(tmpfile.Name())
	if err != nil {
		return nil, err
	}
	if !strings.Contains(ctype, "image") {
		return nil, fmt.Errorf("the downloaded resource is not an image, got %s", ctype)
	}

	if _, err := tmpfile.Seek(0, 0); err != nil {
		return nil, err
	}
	return tmpfile, nil
}

// IsValidUrl tests a string to determine if it is a well structured url or not.
func IsValidUrl(uri string) bool {
	if _, err := url.ParseRequestURI(uri); err != nil {
		return false
	}

	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	return true
}

// DetectContentType detects the file type by reading the MIME type
// information of the file content.
func DetectContentType(fname string) (string, error) {
	file, err := os.Open(fname)
	if err != nil {
		return "", err
	}
	defer file.Close()

	// Only the first 512 bytes are used to sniff the content type.
	buffer := make([]byte, 512)
	if _, err := file.Read(buffer); err != nil && err != io.EOF {
		return "", err
	}

	// Always returns a valid content-type and "application/octet-stream"
	// if no others seemed to match.
	return http.DetectContentType(buffer), nil
}
