package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// KnowledgeBase is the structured record of institutional facts. A nil
// pointer, map or course list means the field is absent from storage.
type KnowledgeBase struct {
	Name           string            `json:"name"`
	Address        string            `json:"address"`
	Phone          string            `json:"phone"`
	Email          string            `json:"email"`
	Website        string            `json:"website"`
	MapLink        string            `json:"map_link"`
	Accreditation  string            `json:"accreditation,omitempty"`
	Principal      *Principal        `json:"principal,omitempty"`
	Director       *Director         `json:"director,omitempty"`
	Facilities     map[string]string `json:"facilities,omitempty"`
	UGCourses      CourseList        `json:"ug_courses"`
	PGCourses      CourseList        `json:"pg_courses"`
	DiplomaCourses CourseList        `json:"diploma_courses"`
}

// MarshalJSON omits a course level that is absent (nil) but writes an empty
// one as {}.
func (kb KnowledgeBase) MarshalJSON() ([]byte, error) {
	type plain KnowledgeBase
	return json.Marshal(struct {
		plain
		UGCourses      *CourseList `json:"ug_courses,omitempty"`
		PGCourses      *CourseList `json:"pg_courses,omitempty"`
		DiplomaCourses *CourseList `json:"diploma_courses,omitempty"`
	}{
		plain:          plain(kb),
		UGCourses:      presentLevel(kb.UGCourses),
		PGCourses:      presentLevel(kb.PGCourses),
		DiplomaCourses: presentLevel(kb.DiplomaCourses),
	})
}

func presentLevel(l CourseList) *CourseList {
	if l == nil {
		return nil
	}
	return &l
}

type Principal struct {
	Name      string `json:"name"`
	Education string `json:"education"`
}

type Director struct {
	Name    string `json:"name"`
	Role    string `json:"role"`
	Message string `json:"message"`
}

type Course struct {
	Name        string `json:"-"`
	Duration    string `json:"duration"`
	Fee         string `json:"fee"`
	Description string `json:"desc"`
}

// CourseLevel names one of the three course mappings.
type CourseLevel string

const (
	LevelUG      CourseLevel = "ug_courses"
	LevelPG      CourseLevel = "pg_courses"
	LevelDiploma CourseLevel = "diploma_courses"
)

// CourseLevels is the fixed scan order used by course lookups.
var CourseLevels = []CourseLevel{LevelUG, LevelPG, LevelDiploma}

// Courses returns the list stored for the level, nil when absent.
func (kb *KnowledgeBase) Courses(level CourseLevel) CourseList {
	switch level {
	case LevelUG:
		return kb.UGCourses
	case LevelPG:
		return kb.PGCourses
	case LevelDiploma:
		return kb.DiplomaCourses
	}
	return nil
}

// Facility reports the text stored for a facility key.
func (kb *KnowledgeBase) Facility(key string) (string, bool) {
	if kb.Facilities == nil {
		return "", false
	}
	text, ok := kb.Facilities[key]
	return text, ok
}

// Clone returns a deep copy so snapshots never share mutable state.
func (kb *KnowledgeBase) Clone() *KnowledgeBase {
	if kb == nil {
		return nil
	}
	out := *kb
	if kb.Principal != nil {
		p := *kb.Principal
		out.Principal = &p
	}
	if kb.Director != nil {
		d := *kb.Director
		out.Director = &d
	}
	if kb.Facilities != nil {
		out.Facilities = make(map[string]string, len(kb.Facilities))
		for k, v := range kb.Facilities {
			out.Facilities[k] = v
		}
	}
	out.UGCourses = kb.UGCourses.clone()
	out.PGCourses = kb.PGCourses.clone()
	out.DiplomaCourses = kb.DiplomaCourses.clone()
	return &out
}

// CourseList is a JSON object of courseName -> course that keeps the
// order in which the keys were stored.
type CourseList []Course

func (l CourseList) clone() CourseList {
	if l == nil {
		return nil
	}
	out := make(CourseList, len(l))
	copy(out, l)
	return out
}

func (l CourseList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (l *CourseList) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		*l = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("course list: expected object, got %v", tok)
	}

	list := CourseList{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("course list: expected key, got %v", tok)
		}
		var c Course
		if err := dec.Decode(&c); err != nil {
			return fmt.Errorf("course %q: %w", name, err)
		}
		c.Name = name
		list = append(list, c)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*l = list
	return nil
}
