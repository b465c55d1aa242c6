package decoder

import (
	"crypto/sha256"
	"encoding/base64"
	"reflect"
	"strings"

	"github.com/near/borsh-go"
	"golang.org/x/xerrors"
)

type (
	// Event is one decoded program event.
	Event struct {
		Name string
		Data interface{}
	}

	// Schema maps 8-byte payload discriminators to event prototypes for one
	// program. The discriminator is the leading 8 bytes of sha256("event:<Name>").
	Schema struct {
		decoders map[[8]byte]eventDecoder
	}

	eventDecoder struct {
		name      string
		eventType reflect.Type
	}
)

func NewSchema() *Schema {
	return &Schema{
		decoders: make(map[[8]byte]eventDecoder),
	}
}

// Register adds an event prototype to the schema. The prototype must be a
// borsh-decodable struct; its pointer type is instantiated per decode.
func (s *Schema) Register(name string, prototype interface{}) *Schema {
	s.decoders[Discriminator(name)] = eventDecoder{
		name:      name,
		eventType: reflect.TypeOf(prototype),
	}
	return s
}

// Decode decodes the base64 payload of one data line. An unknown discriminator
// decodes to a nil event, not an error.
func (s *Schema) Decode(payload string) (*Event, error) {
	data, err := base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
	if err != nil {
		return nil, xerrors.Errorf("failed to decode base64 payload: %w", err)
	}

	if len(data) < len([8]byte{}) {
		return nil, nil
	}

	var discriminator [8]byte
	copy(discriminator[:], data)
	decoder, ok := s.decoders[discriminator]
	if !ok {
		return nil, nil
	}

	event := reflect.New(decoder.eventType).Interface()
	if err := borsh.Deserialize(event, data[len(discriminator):]); err != nil {
		return nil, xerrors.Errorf("failed to decode %v event: %w", decoder.name, err)
	}

	return &Event{
		Name: decoder.name,
		Data: event,
	}, nil
}

// Discriminator derives the payload discriminator of a named event.
func Discriminator(name string) [8]byte {
	var discriminator [8]byte
	digest := sha256.Sum256([]byte("event:" + name))
	copy(discriminator[:], digest[:])
	return discriminator
}
