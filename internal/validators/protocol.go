package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-protocol-catalog/models"
)

// Protocol field names, as they appear in JSON bodies.
const (
	FieldProductCategory       = "product_category"
	FieldFrameHeader           = "frame_header"
	FieldControlWord           = "control_word"
	FieldCommandWord           = "command_word"
	FieldLengthIdentification  = "length_identification"
	FieldCheckField            = "check_field"
	FieldFrameEnd              = "frame_end"
	FieldFunctionDescription   = "function_description"
	FieldTransmissionDirection = "transmission_direction"
	FieldData                  = "data"
	FieldRemark                = "remark"
)

// maxTextLen caps the TEXT columns at the xlsx cell limit, so an export
// never truncates a record.
const maxTextLen = 32767

// maxFieldLen mirrors the VARCHAR widths of the protocols table, counted in
// characters like VARCHAR(n).
var maxFieldLen = map[string]int{
	FieldProductCategory:       100,
	FieldTransmissionDirection: 50,
	FieldFrameHeader:           50,
	FieldControlWord:           50,
	FieldCommandWord:           50,
	FieldLengthIdentification:  50,
	FieldCheckField:            50,
	FieldFrameEnd:              50,
	FieldFunctionDescription:   maxTextLen,
	FieldData:                  maxTextLen,
	FieldRemark:                maxTextLen,
}

var defaultProtocolFields = []string{
	FieldProductCategory,
	FieldFunctionDescription,
	FieldTransmissionDirection,
	FieldFrameHeader,
	FieldControlWord,
	FieldCommandWord,
	FieldLengthIdentification,
	FieldData,
	FieldCheckField,
	FieldFrameEnd,
	FieldRemark,
}

// ProtocolValidator checks protocol records submitted for creation.
type ProtocolValidator struct{}

func NewProtocolValidator() Validator {
	return &ProtocolValidator{}
}

// Validate accepts models.Protocol and *models.Protocol. Without fields it
// checks the seven key fields plus function description, transmission
// direction and data, which are all mandatory, and the optional remark.
func (v *ProtocolValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Protocol:
		return v.validateProtocol(ctx, value, fields...)
	case *models.Protocol:
		return v.validateProtocol(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ProtocolValidator) validateProtocol(_ context.Context, p models.Protocol, fields ...string) error {
	if len(fields) == 0 {
		fields = defaultProtocolFields
	}

	for _, f := range fields {
		var value string

		switch f {
		case FieldProductCategory:
			value = p.ProductCategory
		case FieldFrameHeader:
			value = p.FrameHeader
		case FieldControlWord:
			value = p.ControlWord
		case FieldCommandWord:
			value = p.CommandWord
		case FieldLengthIdentification:
			value = p.LengthIdentification
		case FieldCheckField:
			value = p.CheckField
		case FieldFrameEnd:
			value = p.FrameEnd
		case FieldFunctionDescription:
			value = p.FunctionDescription
		case FieldTransmissionDirection:
			value = p.TransmissionDirection
		case FieldData:
			value = p.Data
		case FieldRemark:
			value = p.Remark
		default:
			return ErrUnknownField
		}

		if f != FieldRemark && strings.TrimSpace(value) == "" {
			return required(f)
		}
		if limit, ok := maxFieldLen[f]; ok && utf8.RuneCountInString(value) > limit {
			return tooLong(f, limit)
		}
	}

	return nil
}
