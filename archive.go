package main

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

var runsBucket = []byte("runs")

// RunRecord is one archived benchmark run.
type RunRecord struct {
	ID      string        `json:"id"`
	Started time.Time     `json:"started"`
	Seed    uint64        `json:"seed"`
	Rows    []ArchivedRow `json:"rows"`
}

// ArchivedRow mirrors a results file line.
type ArchivedRow struct {
	N        int     `json:"n"`
	Function string  `json:"function"`
	Seconds  float64 `json:"seconds"`
}

func newRunRecord(id string, started time.Time, seed uint64, rows []Result) RunRecord {
	rec := RunRecord{
		ID:      id,
		Started: started.UTC(),
		Seed:    seed,
		Rows:    make([]ArchivedRow, 0, len(rows)),
	}
	for _, r := range rows {
		rec.Rows = append(rec.Rows, ArchivedRow{N: r.N, Function: r.Name, Seconds: r.Seconds()})
	}
	return rec
}

// RunArchive keeps run records in a bbolt database, keyed by run ID.
type RunArchive struct {
	db *bolt.DB
}

// OpenRunArchive opens or creates the archive at path.
func OpenRunArchive(path string) (*RunArchive, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open run archive %s", path)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(runsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to prepare run archive")
	}
	return &RunArchive{db: db}, nil
}

// Save stores rec, replacing any record with the same ID.
func (a *RunArchive) Save(rec RunRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "failed to encode run")
	}
	return a.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).Put([]byte(rec.ID), data)
	})
}

// Runs returns every archived run, oldest first.
func (a *RunArchive) Runs() ([]RunRecord, error) {
	var runs []RunRecord
	err := a.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).ForEach(func(k, v []byte) error {
			var rec RunRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return errors.Wrapf(err, "failed to decode run %s", k)
			}
			runs = append(runs, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Started.Before(runs[j].Started)
	})
	return runs, nil
}

// Close closes the database
func (a *RunArchive) Close() error {
	return a.db.Close()
}
