package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/spigell/halatuju/internal/eligibility"
	"github.com/spigell/halatuju/internal/utils"
)

const maxLoggedValue = 200

var (
	complexType = reflect.TypeOf(eligibility.ComplexRequirements{})
	groupsType  = reflect.TypeOf(eligibility.GroupRules{})
)

// DecodeRequirement turns a flat requirement row into a Requirement. Flags
// accept 1, "1", true, "yes" and 1.0. Blank cells such as "" or "nan" read as
// unset, as does a NaN or infinite merit_cutoff. A malformed JSON field is logged and kept as a malformed marker so
// the course fails its check instead of aborting the load.
func DecodeRequirement(row map[string]any, logger *zap.Logger) (eligibility.Requirement, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var req eligibility.Requirement

	courseID := fmt.Sprint(row["course_id"])

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &req,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			jsonFieldHook(logger.With(zap.String("course_id", courseID))),
			flagWordHook,
			// Last: it may return nil, which no later hook can receive.
			blankCellHook,
		),
	})
	if err != nil {
		return req, fmt.Errorf("creating requirement decoder: %w", err)
	}

	if err := decoder.Decode(row); err != nil {
		return req, fmt.Errorf("decoding requirement %s: %w", courseID, err)
	}

	req.CourseID = strings.TrimSpace(req.CourseID)
	req.SourceType = strings.ToLower(strings.TrimSpace(req.SourceType))

	if c := req.MeritCutoff; c != nil && (math.IsNaN(*c) || math.IsInf(*c, 0)) {
		logger.Debug("dropping non-finite merit cutoff", zap.String("course_id", req.CourseID))
		req.MeritCutoff = nil
	}

	return req, nil
}

func jsonFieldHook(logger *zap.Logger) mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if to != complexType && to != groupsType {
			return data, nil
		}

		raw, err := jsonBytes(data)
		if err != nil {
			logger.Warn("unreadable requirement field", zap.String("field", to.Name()), zap.Error(err))
			if to == complexType {
				return eligibility.ComplexRequirements{Malformed: true}, nil
			}
			return eligibility.GroupRules{Malformed: true}, nil
		}

		if to == complexType {
			parsed, err := eligibility.ParseComplexRequirements(raw)
			if err != nil {
				logger.Warn("malformed complex_requirements", zap.String("value", utils.TruncateForLog(string(raw), maxLoggedValue)), zap.Error(err))
			}
			return parsed, nil
		}

		parsed, err := eligibility.ParseSubjectGroupRules(raw)
		if err != nil {
			logger.Warn("malformed subject_group_req", zap.String("value", utils.TruncateForLog(string(raw), maxLoggedValue)), zap.Error(err))
		}
		return parsed, nil
	}
}

// jsonBytes accepts a JSON string cell or structured YAML.
func jsonBytes(data any) ([]byte, error) {
	switch v := data.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return json.Marshal(v)
	}
}

var blankCells = map[string]bool{
	"":     true,
	"nan":  true,
	"null": true,
	"none": true,
	"-":    true,
}

func blankCellHook(from, to reflect.Type, data any) (any, error) {
	s, ok := data.(string)
	if !ok || !blankCells[strings.ToLower(strings.TrimSpace(s))] {
		return data, nil
	}

	target := to
	if target.Kind() == reflect.Pointer {
		target = target.Elem()
	}

	switch target.Kind() {
	case reflect.Bool, reflect.Int, reflect.Int64, reflect.Float64:
		if to.Kind() == reflect.Pointer {
			return nil, nil
		}
		return reflect.Zero(target).Interface(), nil
	default:
		return data, nil
	}
}

var flagWords = map[string]bool{
	"yes": true,
	"y":   true,
	"no":  false,
	"n":   false,
}

func flagWordHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Bool {
		return data, nil
	}

	switch v := data.(type) {
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		if blankCells[s] {
			return v, nil
		}
		if b, ok := flagWords[s]; ok {
			return b, nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f != 0, nil
		}
		return s, nil
	case float64:
		return v != 0 && !math.IsNaN(v), nil
	default:
		return data, nil
	}
}
