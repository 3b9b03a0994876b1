package query

import "strings"

// Request is a query line split into a criterion label and its arguments.
type Request struct {
	// Label is the first word of the line, as typed.
	Label string
	// Args are the remaining words.
	Args []string
	// RawArgs is Args joined with single spaces.
	RawArgs string
}

// Parse splits a query line into a Request.
//
// Postcondition: Returns a Request. If line is blank, Label is empty.
func Parse(line string) Request {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Request{}
	}
	req := Request{Label: fields[0]}
	if len(fields) > 1 {
		req.Args = fields[1:]
		req.RawArgs = strings.Join(req.Args, " ")
	}
	return req
}
