package persist

import (
	"fmt"
	"os"
	"path/filepath"
)

// Save writes the document to a file in the given directory. The filename
// is constructed from the basename and the codec's extension.
func Save(dir, basename string, codec Codec, document any) (string, error) {
	path := filepath.Join(dir, basename+codec.Extension())

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create document file: %w", err)
	}
	defer file.Close()

	err = codec.Encode(file, document)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}

	return path, nil
}

// Load reads a document from a file in the given directory. The document
// parameter must be a pointer to the target struct.
func Load(dir, basename string, codec Codec, document any) error {
	path := filepath.Join(dir, basename+codec.Extension())

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open document file: %w", err)
	}
	defer file.Close()

	err = codec.Decode(file, document)
	if err != nil {
		return fmt.Errorf("decode document: %w", err)
	}

	return nil
}
