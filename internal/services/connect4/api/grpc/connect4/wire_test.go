package connect4

import (
	"testing"

	connect4v1 "github.com/louisbranch/connect4.space/api/gen/go/connect4/v1"
	"google.golang.org/protobuf/proto"
)

func TestConnectionRequestRoundTrip(t *testing.T) {
	original := &connect4v1.ConnectionRequest{
		Metadata: &connect4v1.RequestMetadata{
			ClientId:  stringPtr("client-abc"),
			AccountId: stringPtr("account-xyz"),
		},
		Settings: &connect4v1.RequestSettings{},
		Request:  &connect4v1.ConnectionRequestBody{},
	}

	raw, err := proto.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	decoded := &connect4v1.ConnectionRequest{}
	if err := proto.Unmarshal(raw, decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !proto.Equal(original, decoded) {
		t.Fatalf("round trip mismatch: %v vs %v", original, decoded)
	}
	if got := decoded.GetMetadata().GetClientId(); got != "client-abc" {
		t.Fatalf("client_id = %q, want client-abc", got)
	}
	if got := decoded.GetMetadata().GetAccountId(); got != "account-xyz" {
		t.Fatalf("account_id = %q, want account-xyz", got)
	}
}

func TestConnectionRequestAbsentMetadataDecodes(t *testing.T) {
	raw, err := proto.Marshal(&connect4v1.ConnectionRequest{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	decoded := &connect4v1.ConnectionRequest{}
	if err := proto.Unmarshal(raw, decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Metadata != nil {
		t.Fatal("expected absent metadata to stay absent")
	}
}

func TestAbsentStringDistinguishableFromEmpty(t *testing.T) {
	withEmpty := &connect4v1.RequestMetadata{ClientId: stringPtr("")}
	raw, err := proto.Marshal(withEmpty)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	decoded := &connect4v1.RequestMetadata{}
	if err := proto.Unmarshal(raw, decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.ClientId == nil {
		t.Fatal("expected empty client_id to survive the round trip as present")
	}
	if *decoded.ClientId != "" {
		t.Fatalf("client_id = %q, want empty string", *decoded.ClientId)
	}
	if decoded.AccountId != nil {
		t.Fatal("expected absent account_id to stay absent")
	}
}

func TestConnectionResponsesWireEquivalent(t *testing.T) {
	first := &connect4v1.ConnectionResponse{Response: &connect4v1.ConnectionResponseBody{}}
	second := &connect4v1.ConnectionResponse{Response: &connect4v1.ConnectionResponseBody{}}

	firstRaw, err := proto.Marshal(first)
	if err != nil {
		t.Fatalf("marshal first: %v", err)
	}
	secondRaw, err := proto.Marshal(second)
	if err != nil {
		t.Fatalf("marshal second: %v", err)
	}
	if string(firstRaw) != string(secondRaw) {
		t.Fatalf("wire bytes differ: %x vs %x", firstRaw, secondRaw)
	}
}

func TestWireFieldNumbers(t *testing.T) {
	cases := []struct {
		message proto.Message
		field   string
		number  int32
	}{
		{&connect4v1.ConnectionRequest{}, "metadata", 1},
		{&connect4v1.ConnectionRequest{}, "settings", 2},
		{&connect4v1.ConnectionRequest{}, "request", 3},
		{&connect4v1.RequestMetadata{}, "client_id", 1},
		{&connect4v1.RequestMetadata{}, "account_id", 2},
		{&connect4v1.ConnectionResponse{}, "response", 1},
	}
	for _, tc := range cases {
		descriptor := tc.message.ProtoReflect().Descriptor()
		field := descriptor.Fields().ByTextName(tc.field)
		if field == nil {
			t.Fatalf("%s: field %q not found", descriptor.FullName(), tc.field)
		}
		if int32(field.Number()) != tc.number {
			t.Fatalf("%s.%s number = %d, want %d", descriptor.FullName(), tc.field, field.Number(), tc.number)
		}
	}
}
