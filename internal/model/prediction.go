package model

import "time"

// CandidateSet is one generated prediction. Reds are distinct within the set.
type CandidateSet struct {
	Reds [RedCount]string `json:"reds"`
	Blue string           `json:"blue"`
}

// PredictionBatch is the ordered output of one run. Sets[0] is rank 1.
type PredictionBatch struct {
	Sets        []CandidateSet
	IssueCount  int
	GeneratedAt time.Time
}
