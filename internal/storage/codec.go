package storage

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// FieldDelimiter separates the fields of a prompt line.
	FieldDelimiter = "|"
	// FavoriteMark is written in the flag field of favorite prompts.
	FavoriteMark = "★"

	categorySeparator = ","
	indexSeparator    = ". "
)

// DecodeLine parses one line of prompts.txt.
//
// Accepted forms:
//
//	INDEX. TITLE | cat1,cat2 | ★ | image.png | PROMPT
//	INDEX. TITLE | cat1,cat2 | ★ | PROMPT
//
// The second (four field) form predates preview images. Any line that does not
// fit either form is reported as not ok and should be skipped by the caller.
func DecodeLine(line string) (PromptRecord, bool) {
	line = strings.TrimSpace(line)
	if line == "" || !strings.Contains(line, FieldDelimiter) {
		return PromptRecord{}, false
	}

	parts := strings.Split(line, FieldDelimiter)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 4 {
		return PromptRecord{}, false
	}

	var image, text string
	if len(parts) == 5 {
		image = parts[3]
		text = parts[4]
	} else {
		// Extra fields beyond five are dropped.
		text = parts[3]
	}

	rawIndex, title, found := strings.Cut(parts[0], indexSeparator)
	if !found {
		return PromptRecord{}, false
	}
	index, err := strconv.Atoi(strings.TrimSpace(rawIndex))
	if err != nil {
		return PromptRecord{}, false
	}

	return PromptRecord{
		Index:      index,
		Title:      title,
		Categories: splitCategories(parts[1]),
		Favorite:   parts[2] == FavoriteMark,
		Image:      image,
		Prompt:     text,
	}, true
}

// EncodeLine formats a record as a five field prompt line.
func EncodeLine(r PromptRecord) string {
	flag := ""
	if r.Favorite {
		flag = FavoriteMark
	}
	return fmt.Sprintf("%d. %s | %s | %s | %s | %s",
		r.Index,
		r.Title,
		strings.Join(r.Categories, categorySeparator),
		flag,
		r.Image,
		r.Prompt,
	)
}

func splitCategories(field string) []string {
	categories := []string{}
	for _, c := range strings.Split(field, categorySeparator) {
		if c = strings.TrimSpace(c); c != "" {
			categories = append(categories, c)
		}
	}
	return categories
}
