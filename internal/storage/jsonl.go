// Package storage handles publication persistence in JSONL, SQLite and
// MongoDB forms.
package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aidi-lab/pubnet/internal/pubrecord"
)

// MaxJSONLLineCapacity is the maximum buffer size for reading JSONL lines
// (1MB per line). Abstracts can make publication lines long.
const MaxJSONLLineCapacity = 1024 * 1024

// ReadAll reads all publications from a JSONL file. A missing file is an
// empty corpus, not an error.
func ReadAll(path string) ([]pubrecord.Publication, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening publications file: %w", err)
	}
	defer f.Close()

	var pubs []pubrecord.Publication
	scanner := bufio.NewScanner(f)

	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var pub pubrecord.Publication
		if err := json.Unmarshal(line, &pub); err != nil {
			return nil, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		pubs = append(pubs, pub)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading publications file: %w", err)
	}

	return pubs, nil
}

// WriteAll writes all publications to a JSONL file, replacing existing
// content.
func WriteAll(path string, pubs []pubrecord.Publication) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating publications file: %w", err)
	}
	defer f.Close()

	for i, pub := range pubs {
		data, err := json.Marshal(pub)
		if err != nil {
			return fmt.Errorf("encoding publication %d: %w", i, err)
		}

		if _, err := f.Write(data); err != nil {
			return fmt.Errorf("writing publication %d: %w", i, err)
		}
		if _, err := f.WriteString("\n"); err != nil {
			return fmt.Errorf("writing newline: %w", err)
		}
	}

	return nil
}
