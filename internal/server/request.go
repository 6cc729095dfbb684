package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/claude/timesplit/internal/planner"
)

// maxBodyBytes bounds plan request bodies.
const maxBodyBytes = 64 << 10

// fields looks up raw request inputs by name.
type fields interface {
	lookup(key string) (any, bool)
}

type queryFields map[string][]string

func (q queryFields) lookup(key string) (any, bool) {
	v, ok := q[key]
	if !ok || len(v) == 0 {
		return nil, false
	}
	return v[0], true
}

type bodyFields map[string]any

func (b bodyFields) lookup(key string) (any, bool) {
	v, ok := b[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// parsePlanRequest extracts planner inputs. POST requests read a JSON or form body,
// all other methods read the query string. A missing or non-numeric total becomes NaN
// and is rejected by the builder.
func parsePlanRequest(r *http.Request) (planner.Request, error) {
	var f fields
	if r.Method == http.MethodPost {
		bf, err := readBody(r)
		if err != nil {
			return planner.Request{}, err
		}
		f = bf
	} else {
		f = queryFields(r.URL.Query())
	}

	total := math.NaN()
	if v, ok := firstPresent(f, "total_minutes", "totalMinutes"); ok {
		total = toNumber(v)
	}
	return planner.Request{
		TotalMinutes: total,
		MuscleGroup:  firstString(f, "muscle_group", "muscleGroup"),
		FitnessLevel: firstString(f, "fitness_level", "fitnessLevel"),
	}, nil
}

func readBody(r *http.Request) (bodyFields, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parsing form body: %w", err)
		}
		out := bodyFields{}
		for k, v := range r.PostForm {
			if len(v) > 0 {
				out[k] = v[0]
			}
		}
		return out, nil
	}

	out := bodyFields{}
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&out)
	if errors.Is(err, io.EOF) {
		return out, nil
	}
	if err != nil {
		return nil, fmt.Errorf("decoding JSON body: %w", err)
	}
	return out, nil
}

// firstPresent returns the first key that is present and non-null.
func firstPresent(f fields, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := f.lookup(k); ok {
			return v, true
		}
	}
	return nil, false
}

// firstString returns the first non-empty string value among keys.
func firstString(f fields, keys ...string) string {
	for _, k := range keys {
		v, ok := f.lookup(k)
		if !ok {
			continue
		}
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// toNumber coerces a JSON or query value to minutes. Blank strings read as zero,
// anything else non-numeric as NaN.
func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
