package archive

import (
	"bytes"
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/mmynk/mealtracker/internal/models"
)

// SchemaVersion is written into every archive.
const SchemaVersion = 1

// magic prefixes every archive file.
var magic = []byte("MEAL")

// Archive fields.
const (
	fieldVersion protowire.Number = 1
	fieldMeal    protowire.Number = 2
)

// Meal fields.
const (
	fieldName   protowire.Number = 1
	fieldPhoto  protowire.Number = 2
	fieldRating protowire.Number = 3
)

var (
	ErrBadMagic           = errors.New("not a meal archive")
	ErrUnsupportedVersion = errors.New("unsupported archive version")
)

// Encode serializes meals into the tagged-field archive format.
func Encode(meals []models.Meal) []byte {
	b := append([]byte(nil), magic...)
	b = protowire.AppendTag(b, fieldVersion, protowire.VarintType)
	b = protowire.AppendVarint(b, SchemaVersion)

	for _, meal := range meals {
		b = protowire.AppendTag(b, fieldMeal, protowire.BytesType)
		b = protowire.AppendBytes(b, encodeMeal(meal))
	}
	return b
}

func encodeMeal(meal models.Meal) []byte {
	var b []byte
	b = protowire.AppendTag(b, fieldName, protowire.BytesType)
	b = protowire.AppendString(b, meal.Name())
	if meal.HasPhoto() {
		b = protowire.AppendTag(b, fieldPhoto, protowire.BytesType)
		b = protowire.AppendBytes(b, meal.Photo())
	}
	b = protowire.AppendTag(b, fieldRating, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(meal.Rating()))
	return b
}

// Decode parses an archive produced by Encode.
// Unknown fields are skipped; meals are re-validated through models.NewMeal.
func Decode(data []byte) ([]models.Meal, error) {
	if !bytes.HasPrefix(data, magic) {
		return nil, ErrBadMagic
	}
	b := data[len(magic):]

	var (
		version uint64
		meals   []models.Meal
	)
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("read tag: %w", protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == fieldVersion && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, fmt.Errorf("read version: %w", protowire.ParseError(n))
			}
			version = v
			b = b[n:]
		case num == fieldMeal && typ == protowire.BytesType:
			raw, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("read meal %d: %w", len(meals), protowire.ParseError(n))
			}
			meal, err := decodeMeal(raw)
			if err != nil {
				return nil, fmt.Errorf("decode meal %d: %w", len(meals), err)
			}
			meals = append(meals, meal)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("skip field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
		}
	}

	if version != SchemaVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	return meals, nil
}

func decodeMeal(b []byte) (models.Meal, error) {
	var (
		name   string
		photo  models.Photo
		rating uint64
	)
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return models.Meal{}, protowire.ParseError(n)
		}
		b = b[n:]

		switch {
		case num == fieldName && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			if n < 0 {
				return models.Meal{}, protowire.ParseError(n)
			}
			name = v
			b = b[n:]
		case num == fieldPhoto && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return models.Meal{}, protowire.ParseError(n)
			}
			photo = append(models.Photo(nil), v...)
			b = b[n:]
		case num == fieldRating && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return models.Meal{}, protowire.ParseError(n)
			}
			rating = v
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return models.Meal{}, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}

	if rating > models.MaxRating {
		return models.Meal{}, &models.ValidationError{Field: "rating", Reason: fmt.Sprintf("%d is outside %d..%d", rating, models.MinRating, models.MaxRating)}
	}
	return models.NewMeal(name, photo, int(rating))
}
