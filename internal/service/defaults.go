package service

import "time"

const (
	defaultTipInterval = 60 * time.Second

	defaultWarmerWorkers = 8
	maxPageLimit         = 100

	sharedWorkTimeout = 2 * time.Minute
)
