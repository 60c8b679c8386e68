package managementv1

import (
	"context"
	"strings"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestCodecIsJSON(t *testing.T) {
	c := encoding.GetCodec(ContentSubtype)
	if c == nil {
		t.Fatalf("no codec registered for %q", ContentSubtype)
	}

	data, err := c.Marshal(wrapperspb.String("1234123412341234"))
	if err != nil {
		t.Fatalf("marshal wrapper: %v", err)
	}
	if string(data) != `"1234123412341234"` {
		t.Errorf("wrapper encoded as %s, want a JSON string", data)
	}

	data, err = c.Marshal(&CustomList{Name: "work"})
	if err != nil {
		t.Fatalf("marshal message: %v", err)
	}
	if !strings.Contains(string(data), `"name":"work"`) {
		t.Errorf("message encoded as %s", data)
	}
	var back CustomList
	if err := c.Unmarshal(data, &back); err != nil || back.Name != "work" {
		t.Fatalf("unmarshal = %+v, %v", back, err)
	}
}

// recordingConn captures the call options of one unary call.
type recordingConn struct {
	grpc.ClientConnInterface
	opts []grpc.CallOption
}

func (r *recordingConn) Invoke(_ context.Context, _ string, _, _ any, opts ...grpc.CallOption) error {
	r.opts = opts
	return nil
}

func TestInvokeSelectsJSONSubtype(t *testing.T) {
	rc := &recordingConn{}
	if _, err := Invoke[UUID, UUID](context.Background(), rc, ManagementService_SetApiAccessMethod_FullMethodName, &UUID{}); err != nil {
		t.Fatalf("invoke: %v", err)
	}
	for _, o := range rc.opts {
		if sub, ok := o.(grpc.ContentSubtypeCallOption); ok && sub.ContentSubtype == ContentSubtype {
			return
		}
	}
	t.Fatalf("call options %v do not select the %q subtype", rc.opts, ContentSubtype)
}
