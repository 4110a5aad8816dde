package config

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

func (s *SidebarSpec) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var probe interface{}
	if err := unmarshal(&probe); err != nil {
		return errors.WithStack(err)
	}

	switch probe.(type) {
	case nil:
		*s = SidebarSpec{}
		return nil
	case []interface{}:
		var global []SidebarGroup
		if err := unmarshal(&global); err != nil {
			return errors.Wrap(err, "sidebar")
		}
		*s = SidebarSpec{Global: global}
		return nil
	}

	var scoped yaml.MapSlice
	if err := unmarshal(&scoped); err != nil {
		return errors.Wrap(err, "sidebar must be a list of groups or a map of path prefixes")
	}

	spec := SidebarSpec{Scoped: true}
	for _, item := range scoped {
		prefix, ok := item.Key.(string)
		if !ok {
			return errors.Errorf("sidebar key %v is not a string", item.Key)
		}

		raw, err := yaml.Marshal(item.Value)
		if err != nil {
			return errors.WithStack(err)
		}

		var groups []SidebarGroup
		if err := yaml.Unmarshal(raw, &groups); err != nil {
			return errors.Wrapf(err, "sidebar %q", prefix)
		}

		spec.Sections = append(spec.Sections, SidebarSection{Prefix: prefix, Groups: groups})
	}

	*s = spec
	return nil
}

func (s SidebarSpec) MarshalYAML() (interface{}, error) {
	if !s.IsScoped() {
		if s.Global == nil {
			return []SidebarGroup{}, nil
		}
		return s.Global, nil
	}

	out := make(yaml.MapSlice, 0, len(s.Sections))
	for _, section := range s.Sections {
		out = append(out, yaml.MapItem{Key: section.Prefix, Value: section.Groups})
	}
	return out, nil
}

func (s SidebarSpec) MarshalJSON() ([]byte, error) {
	if !s.IsScoped() {
		if s.Global == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(s.Global)
	}

	// encoding/json sorts map keys, so the object is written by hand.
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, section := range s.Sections {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(section.Prefix)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		groups := section.Groups
		if groups == nil {
			groups = []SidebarGroup{}
		}
		value, err := json.Marshal(groups)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (s *SidebarSpec) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = SidebarSpec{}
		return nil
	}

	if data[0] == '[' {
		var global []SidebarGroup
		if err := json.Unmarshal(data, &global); err != nil {
			return errors.Wrap(err, "sidebar")
		}
		*s = SidebarSpec{Global: global}
		return nil
	}

	if data[0] != '{' {
		return errors.New("sidebar must be a list of groups or a map of path prefixes")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return errors.WithStack(err)
	}

	spec := SidebarSpec{Scoped: true}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return errors.WithStack(err)
		}
		prefix, ok := tok.(string)
		if !ok {
			return errors.Errorf("sidebar key %v is not a string", tok)
		}

		var groups []SidebarGroup
		if err := dec.Decode(&groups); err != nil {
			return errors.Wrapf(err, "sidebar %q", prefix)
		}

		spec.Sections = append(spec.Sections, SidebarSection{Prefix: prefix, Groups: groups})
	}

	if _, err := dec.Token(); err != nil {
		return errors.WithStack(err)
	}

	*s = spec
	return nil
}
