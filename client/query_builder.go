package client

import (
	"strings"
)

type Param struct {
	Key   string
	Value string
}

// Params is an ordered set of request parameters. The order is part of the
// signed payload, so it is kept exactly as the parameters were added.
type Params []Param

func NewParams(pairs ...Param) Params {
	p := make(Params, 0, len(pairs))
	for _, pair := range pairs {
		p = p.Set(pair.Key, pair.Value)
	}
	return p
}

// Set replaces the value of an existing key in place, or appends the key.
func (p Params) Set(key string, value string) Params {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = value
			return p
		}
	}
	return append(p, Param{Key: key, Value: value})
}

// Merge sets every pair of other on top of p, in other's order.
func (p Params) Merge(other Params) Params {
	for _, pair := range other {
		p = p.Set(pair.Key, pair.Value)
	}
	return p
}

// Encode renders the canonical payload key1=value1&key2=value2. Values are
// written verbatim, without URL escaping.
func (p Params) Encode() string {
	sb := strings.Builder{}
	for i, pair := range p {
		if i != 0 {
			sb.WriteString("&")
		}
		sb.WriteString(pair.Key + "=" + pair.Value)
	}
	return sb.String()
}
