package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"
)

// Writes a config.yaml.sample based on the struct tags of Config. Only the
// default/comment/yaml tags are consulted, values set at runtime are ignored.
type sampleWriter struct {
	indent int
	sb     strings.Builder
}

func (s *sampleWriter) line(v string) {
	s.sb.WriteString(strings.Repeat(" ", s.indent*2) + v + "\n")
}

func (s *sampleWriter) field(f reflect.StructField) {
	yamlName := f.Tag.Get("yaml")

	if yamlName == "" {
		panic("config: field " + f.Name + " is missing a yaml tag")
	}

	switch f.Type.Kind() {
	case reflect.Struct:
		s.line(yamlName + ":")
		s.indent++
		for i := 0; i < f.Type.NumField(); i++ {
			s.field(f.Type.Field(i))
		}
		s.indent--

		if s.indent == 0 {
			s.sb.WriteString("\n")
		}
	case reflect.Slice:
		s.line(yamlName + ":")
		s.indent++
		for _, def := range strings.Split(f.Tag.Get("default"), ",") {
			s.line("- " + strings.TrimSpace(def))
		}
		s.indent--
	case reflect.Ptr:
		panic("config: pointer fields are not supported")
	default:
		entry := yamlName + ":"

		if def := f.Tag.Get("default"); def != "" {
			entry += " " + def
		}

		if comment := f.Tag.Get("comment"); comment != "" {
			entry += " # " + comment
		}

		s.line(entry)
	}
}

func GenConfig() {
	s := sampleWriter{}

	for _, f := range reflect.VisibleFields(reflect.TypeOf(Config{})) {
		s.field(f)
	}

	f, err := os.Create("config.yaml.sample")

	if err != nil {
		panic(err)
	}

	defer f.Close()

	_, err = f.WriteString(strings.TrimSpace(s.sb.String()) + "\n")

	if err != nil {
		panic(err)
	}

	fmt.Println("Wrote config.yaml.sample")
}
