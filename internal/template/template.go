package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// The two documents live at fixed relative paths under the repository base URL.
const (
	BodyFileName      = "azuredeploy.json"
	ParameterFileName = "azuredeploy.parameters.json"
)

// JoinURL appends a file name to a base URL with exactly one separator,
// regardless of whether the base carries a trailing slash.
func JoinURL(base, name string) string {
	return strings.TrimRight(base, "/") + "/" + name
}

// ParameterDefinition is one entry of the template body's parameters mapping.
type ParameterDefinition struct {
	Type          string `json:"type,omitempty"`
	AllowedValues []any  `json:"allowedValues,omitempty"`
	DefaultValue  any    `json:"defaultValue,omitempty"`
}

// AllowedLabels renders the allowed values as prompt option labels.
func (d ParameterDefinition) AllowedLabels() []string {
	labels := make([]string, 0, len(d.AllowedValues))
	for _, v := range d.AllowedValues {
		labels = append(labels, fmt.Sprint(v))
	}
	return labels
}

// Descriptor is the parsed template body. Document keeps the full decoded
// document for the deployment payload; Parameters and Order expose the
// parameters mapping and its declared order.
type Descriptor struct {
	Document   map[string]any
	Parameters map[string]ParameterDefinition
	Order      []string
}

func ParseDescriptor(data []byte) (*Descriptor, error) {
	var document map[string]any
	if err := json.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("failed to parse template body: %w", err)
	}

	var envelope struct {
		Parameters json.RawMessage `json:"parameters"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse template body: %w", err)
	}

	descriptor := &Descriptor{
		Document:   document,
		Parameters: map[string]ParameterDefinition{},
	}
	if len(envelope.Parameters) == 0 {
		return descriptor, nil
	}

	if err := json.Unmarshal(envelope.Parameters, &descriptor.Parameters); err != nil {
		return nil, fmt.Errorf("failed to parse template parameters: %w", err)
	}
	order, err := parameterOrder(envelope.Parameters)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template parameters: %w", err)
	}
	descriptor.Order = order

	return descriptor, nil
}

// parameterOrder recovers the declared order of the parameters object, which
// json.Unmarshal into a map loses.
func parameterOrder(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("parameters is not an object")
	}

	var order []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in parameters object", tok)
		}
		order = append(order, name)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return order, nil
}

// ParameterValue is one value slot of the parameters document.
type ParameterValue struct {
	Value any `json:"value"`
}

// ParameterFile is the parsed parameters document; its value slots are filled
// from collected values before deployment.
type ParameterFile struct {
	Schema         string                    `json:"$schema,omitempty"`
	ContentVersion string                    `json:"contentVersion,omitempty"`
	Parameters     map[string]ParameterValue `json:"parameters"`
}

func ParseParameterFile(data []byte) (*ParameterFile, error) {
	var file ParameterFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse parameters file: %w", err)
	}
	if file.Parameters == nil {
		file.Parameters = map[string]ParameterValue{}
	}
	return &file, nil
}

// Deployments always run in incremental mode.
const ModeIncremental = "incremental"

// Payload is a deployment request body, kept SDK-neutral so the gateway owns
// the translation to its wire types.
type Payload struct {
	Template   map[string]any
	Parameters map[string]any
	Mode       string
}

// BuildPayload merges collected values into the parameter file's value slots
// by name. A collected value with no declared slot is dropped.
func BuildPayload(descriptor *Descriptor, file *ParameterFile, values map[string]string) Payload {
	parameters := map[string]any{}
	if file != nil {
		for name, slot := range file.Parameters {
			parameters[name] = map[string]any{"value": slot.Value}
		}
	}
	for name, value := range values {
		if file == nil {
			break
		}
		if _, declared := file.Parameters[name]; !declared {
			continue
		}
		parameters[name] = map[string]any{"value": value}
	}

	payload := Payload{
		Parameters: parameters,
		Mode:       ModeIncremental,
	}
	if descriptor != nil {
		payload.Template = descriptor.Document
	}
	return payload
}
