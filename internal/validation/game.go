package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/spboyer/bidlens/internal/loader"
	"github.com/spboyer/bidlens/internal/models"
)

// unknownGameID stands in for records whose game_id is missing or unusable.
const unknownGameID = "<unknown>"

// InvalidGameError is returned for a record that fails the game schema or
// cannot be decoded.
type InvalidGameError struct {
	GameID   string
	Line     int
	Problems []string
}

func (e *InvalidGameError) Error() string {
	return fmt.Sprintf("game %s (line %d): %s", e.GameID, e.Line, strings.Join(e.Problems, "; "))
}

// Result holds the outcome of validating a whole log.
type Result struct {
	Games    []models.GameRecord
	Rejected []*InvalidGameError
}

// Validate checks one raw record and decodes it. Rounds that cannot be decoded
// are reported to sink and dropped; the surviving rounds keep their original
// position as Index.
func Validate(raw loader.RawRecord, sink loader.WarningSink) (*models.GameRecord, error) {
	id := bestEffortGameID(raw.Doc)

	if problems := CheckDocument(raw.Doc); len(problems) > 0 {
		return nil, &InvalidGameError{GameID: id, Line: raw.Line, Problems: problems}
	}

	var rec models.GameRecord
	if err := decode(raw.Doc, &rec); err != nil {
		return nil, &InvalidGameError{GameID: id, Line: raw.Line, Problems: []string{err.Error()}}
	}
	rec.GameID = id
	rec.Line = raw.Line

	rounds, _ := raw.Doc["rounds"].([]any)
	rec.Rounds = make([]models.RoundRecord, 0, len(rounds))
	for i, doc := range rounds {
		obj, ok := doc.(map[string]any)
		if !ok {
			if sink != nil {
				sink.RoundSkipped(rec.GameID, i, fmt.Errorf("round is %s, want object", jsonKind(doc)))
			}
			continue
		}
		var r models.RoundRecord
		if err := decode(obj, &r); err != nil {
			if sink != nil {
				sink.RoundSkipped(rec.GameID, i, err)
			}
			continue
		}
		r.Index = i
		rec.Rounds = append(rec.Rounds, r)
	}
	return &rec, nil
}

// ValidateAll validates every record in order, reporting each rejection
// to sink.
func ValidateAll(records []loader.RawRecord, sink loader.WarningSink) Result {
	var res Result
	for _, raw := range records {
		rec, err := Validate(raw, sink)
		if err != nil {
			ige := err.(*InvalidGameError)
			res.Rejected = append(res.Rejected, ige)
			if sink != nil {
				sink.RecordSkipped(ige.GameID, ige.Line, ige)
			}
			continue
		}
		res.Games = append(res.Games, *rec)
	}
	return res
}

// Games returns the valid games in records, or loader.ErrEmptyOrAllInvalid
// when none survive.
func Games(records []loader.RawRecord, sink loader.WarningSink) ([]models.GameRecord, error) {
	res := ValidateAll(records, sink)
	if len(res.Games) == 0 {
		return nil, fmt.Errorf("%w: %d record(s) rejected", loader.ErrEmptyOrAllInvalid, len(res.Rejected))
	}
	return res.Games, nil
}

func decode(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// jsonKind names the JSON type of a decoded value for warnings.
func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func bestEffortGameID(doc map[string]any) string {
	switch v := doc["game_id"].(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return unknownGameID
}
