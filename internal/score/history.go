package score

import (
	"database/sql"
	"math"

	"git.lost.host/meutraa/dancehero/internal/game"
	"git.lost.host/meutraa/dancehero/internal/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

// History logs every judgement of the running session to SQLite. The
// default data source is in-memory, and Reset empties it at session start.
type History struct {
	db  *sql.DB
	log *log.Logger
}

const initStatement = `
create table if not exists judgements
  (
	  id integer not null primary key,
	  note integer,
	  lane integer,
	  hit integer,
	  name text,
	  points integer,
	  combo integer,
	  delta real
  );
`

func OpenHistory(dsn string, logger *log.Logger) (*History, error) {
	if nil == logger {
		logger = log.Discard()
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open history")
	}
	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(initStatement); nil != err {
		db.Close()
		return nil, errors.Wrap(err, "unable to create history table")
	}
	return &History{db: db, log: logger}, nil
}

func (h *History) Close() {
	if nil != h.db {
		h.db.Close()
	}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Record stores an outcome together with the combo it left behind.
func (h *History) Record(o game.Outcome, combo int) {
	_, err := h.db.Exec(
		"insert into judgements(note, lane, hit, name, points, combo, delta) values(?, ?, ?, ?, ?, ?, ?)",
		o.NoteID, o.Direction.Lane(), boolInt(o.Hit), o.Judgement.Name, o.Points, combo, o.Offset,
	)
	if nil != err {
		h.log.Errorf("unable to record judgement: %v", err)
	}
}

func (h *History) Reset() {
	if _, err := h.db.Exec("delete from judgements"); nil != err {
		h.log.Errorf("unable to clear history: %v", err)
	}
}

func (h *History) Summary() Summary {
	summary := Summary{Counts: map[string]int{}}

	rows, err := h.db.Query("select name, count(*) from judgements where hit = 1 group by name")
	if nil != err {
		h.log.Errorf("unable to count judgements: %v", err)
		return summary
	}
	for rows.Next() {
		var name string
		var count int
		if err := rows.Scan(&name, &count); nil != err {
			h.log.Errorf("unable to scan judgement count: %v", err)
			continue
		}
		summary.Counts[name] = count
	}
	rows.Close()

	if err := h.db.QueryRow("select count(*) from judgements where hit = 0").Scan(&summary.Misses); nil != err {
		h.log.Errorf("unable to count misses: %v", err)
	}

	rows, err = h.db.Query("select delta from judgements where hit = 1")
	if nil != err {
		h.log.Errorf("unable to load offsets: %v", err)
		return summary
	}
	defer rows.Close()
	offsets := []float64{}
	sum := 0.0
	for rows.Next() {
		var d float64
		if err := rows.Scan(&d); nil != err {
			continue
		}
		offsets = append(offsets, d)
		sum += d
	}

	total := float64(len(offsets))
	if total > 0 {
		summary.Mean = sum / total
	}
	if total > 1 {
		for _, d := range offsets {
			xi := d - summary.Mean
			summary.Stdev += xi * xi
		}
		summary.Stdev /= total - 1
		summary.Stdev = math.Sqrt(summary.Stdev)
	}
	return summary
}

// Discard is a Recorder that keeps nothing, for when the history
// database is unavailable.
type Discard struct{}

func (Discard) Record(game.Outcome, int) {}
func (Discard) Summary() Summary        { return Summary{Counts: map[string]int{}} }
func (Discard) Reset()                  {}
