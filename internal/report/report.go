package report

import "time"

// Row is one timing entry for a single run. Duration and Delta are only
// meaningful when their Has* flag is set; an unavailable duration never
// feeds the next row's delta.
type Row struct {
	RunNumber   int
	SHA         string
	Date        time.Time
	Duration    time.Duration
	HasDuration bool
	Delta       time.Duration
	HasDelta    bool
	Message     string
}

// Meta describes the aggregation a set of rows belongs to.
type Meta struct {
	Repo     string
	PR       int
	Workflow string
	Job      string
	Step     string
	Total    bool
	RunCount int
}
