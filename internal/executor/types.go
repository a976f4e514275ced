package executor

import "victoriaos-connector/internal/operation"

// Options controls one run.
type Options struct {
	// ContinueOnFail records failing items as {"error": msg} instead of aborting.
	ContinueOnFail bool
	// ValidateIDs rejects identifiers that are not UUIDs before any request is sent.
	ValidateIDs bool
}

// Item is one output record, paired with the input position that produced it.
type Item struct {
	JSON       any `json:"json" yaml:"json"`
	PairedItem int `json:"pairedItem" yaml:"pairedItem"`
}

// Target picks the resource and operation for an item.
type Target func(p operation.Params) (operation.Resource, operation.Operation, error)
