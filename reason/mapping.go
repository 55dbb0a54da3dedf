package reason

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Mapper converts a raw hardware reset-cause register value into a Reason.
// Implementations are platform specific and supplied by the host.
// Map must return Unknown when the register value is not recognized.
type Mapper interface {
	Map(raw uint32) Reason
}

// MapperFunc adapts an ordinary function to the Mapper interface.
type MapperFunc func(raw uint32) Reason

// Map calls f(raw).
func (f MapperFunc) Map(raw uint32) Reason {
	return f(raw)
}

// Rule maps register bits to a reason.
// A rule matches when any bit in Mask is set in the register value.
type Rule struct {
	Mask   uint32
	Reason Reason
}

// TableMapper is a Mapper driven by an ordered list of rules.
// The first matching rule wins; Default is returned when nothing matches.
//
// Reset-cause registers usually latch several bits at once (for example
// pin reset together with power-on), so rules should be ordered from most
// to least specific.
type TableMapper struct {
	Rules   []Rule
	Default Reason
}

// Map implements Mapper.
func (m *TableMapper) Map(raw uint32) Reason {
	for _, rule := range m.Rules {
		if raw&rule.Mask != 0 {
			return rule.Reason
		}
	}
	return m.Default
}

// MappingError reports an invalid register map definition.
type MappingError struct {
	// Rule is the 1-based rule index, or 0 when the error is not rule specific
	Rule int

	// Message describes the problem
	Message string
}

func (e *MappingError) Error() string {
	if e.Rule > 0 {
		return fmt.Sprintf("register map rule %d: %s", e.Rule, e.Message)
	}
	return fmt.Sprintf("register map: %s", e.Message)
}

// mappingFile is the YAML form of a TableMapper.
//
//	default: Unknown
//	rules:
//	  - mask: 0x00000004
//	    reason: SoftwareReset
//	  - mask: 0x00000002
//	    reason: HardwareWatchdog
type mappingFile struct {
	Default string        `yaml:"default"`
	Rules   []mappingRule `yaml:"rules"`
}

type mappingRule struct {
	Mask   registerValue `yaml:"mask"`
	Reason string        `yaml:"reason"`
}

// registerValue accepts decimal, hex (0x) and binary (0b) register literals.
type registerValue struct {
	value uint32
	set   bool
}

func (v *registerValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: register value must be a scalar", node.Line)
	}
	n, err := strconv.ParseUint(node.Value, 0, 32)
	if err != nil {
		return fmt.Errorf("line %d: invalid register value %q", node.Line, node.Value)
	}
	v.value = uint32(n)
	v.set = true
	return nil
}

// LoadMappingFile reads a YAML register map from the given path.
//
// Example:
//
//	m, err := reason.LoadMappingFile("nrf52_resetreas.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tracker := tracking.New(region, tracking.WithMapper(m))
func LoadMappingFile(path string) (*TableMapper, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open register map: %w", err)
	}
	defer func() { _ = f.Close() }()

	return LoadMapping(f)
}

// LoadMapping reads a YAML register map from any io.Reader.
func LoadMapping(r io.Reader) (*TableMapper, error) {
	var file mappingFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, &MappingError{Message: "empty document"}
		}
		return nil, fmt.Errorf("failed to decode register map: %w", err)
	}

	m := &TableMapper{
		Rules:   make([]Rule, 0, len(file.Rules)),
		Default: Unknown,
	}

	if file.Default != "" {
		def, err := Parse(file.Default)
		if err != nil {
			return nil, &MappingError{Message: fmt.Sprintf("default: %v", err)}
		}
		m.Default = def
	}

	if len(file.Rules) == 0 {
		return nil, &MappingError{Message: "no rules defined"}
	}

	for i, fr := range file.Rules {
		if !fr.Mask.set || fr.Mask.value == 0 {
			return nil, &MappingError{Rule: i + 1, Message: "mask must be non-zero"}
		}
		r, err := Parse(fr.Reason)
		if err != nil {
			return nil, &MappingError{Rule: i + 1, Message: err.Error()}
		}
		m.Rules = append(m.Rules, Rule{Mask: fr.Mask.value, Reason: r})
	}

	return m, nil
}
