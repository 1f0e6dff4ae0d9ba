// Package dataset reads job postings from a JSON file.
//
// The loader is lenient: a document that cannot be parsed, or whose top level
// is not an array, yields an empty dataset instead of an error. Fields with the
// wrong type are treated as missing.
package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/ttv-voidgg/datascience-dashboard/internal/models"
)

// Options controls how a file is loaded
type Options struct {
	// Progress, when set, receives a byte progress bar while the file is read.
	Progress io.Writer
	Log      logrus.FieldLogger
}

// Load reads and parses path. Only failures to read the file are returned as
// errors; unparseable content is logged and produces zero records.
func Load(path string, opts Options) ([]models.JobRecord, error) {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if opts.Progress != nil {
		info, statErr := f.Stat()
		if statErr != nil {
			return nil, fmt.Errorf("stat dataset: %w", statErr)
		}
		bar := pb.New64(info.Size())
		bar.Set(pb.Bytes, true)
		bar.SetWriter(opts.Progress)
		bar.Start()
		defer bar.Finish()
		r = bar.NewProxyReader(f)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	records := Parse(data, log)
	log.WithFields(logrus.Fields{
		"path":    path,
		"bytes":   len(data),
		"records": len(records),
	}).Debug("dataset loaded")

	return records, nil
}

// Parse decodes a JSON array of job postings. Malformed input is logged and
// yields an empty, non-nil slice, as does a top level that is not an array.
// Array elements that are not objects are skipped.
func Parse(data []byte, log logrus.FieldLogger) []models.JobRecord {
	records := []models.JobRecord{}

	if !gjson.ValidBytes(data) {
		if log != nil {
			log.Warn("could not parse dataset: invalid JSON")
		}
		return records
	}

	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		if log != nil {
			log.WithField("type", root.Type.String()).Debug("dataset top level is not an array")
		}
		return records
	}

	skipped := 0
	root.ForEach(func(_, value gjson.Result) bool {
		if !value.IsObject() {
			skipped++
			return true
		}
		records = append(records, parseRecord(value))
		return true
	})

	if skipped > 0 && log != nil {
		log.WithField("skipped", skipped).Debug("ignored non-object dataset entries")
	}
	return records
}

func parseRecord(v gjson.Result) models.JobRecord {
	job := models.JobRecord{
		Title:   str(v.Get("title")),
		Company: str(v.Get("company")),
	}

	if loc := v.Get("location"); loc.Type == gjson.String {
		job.Location = loc.Str
		job.HasLocation = true
	}

	if s := v.Get("salary"); s.IsObject() {
		job.Salary = &models.Salary{
			Min: num(s.Get("min")),
			Max: num(s.Get("max")),
		}
	}

	return job
}

func str(r gjson.Result) string {
	if r.Type != gjson.String {
		return ""
	}
	return r.Str
}

func num(r gjson.Result) float64 {
	if r.Type != gjson.Number {
		return 0
	}
	return r.Num
}
