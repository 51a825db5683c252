package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	goruntime "runtime"
	"testing"

	"railfounding/internal/config"
	"railfounding/internal/gamedata"

	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

// recordingLogger keeps Info lines and the fields it was derived with.
type recordingLogger struct {
	noopLogger
	fields map[string]interface{}
	lines  *[]string
}

func (l recordingLogger) Info(format string, v ...interface{}) {
	*l.lines = append(*l.lines, fmt.Sprintf(format, v...))
}

func (l recordingLogger) WithField(key string, v interface{}) runtime.Logger {
	fields := map[string]interface{}{key: v}
	for k, val := range l.fields {
		fields[k] = val
	}
	return recordingLogger{fields: fields, lines: l.lines}
}

func (l recordingLogger) Fields() map[string]interface{} {
	return l.fields
}

func newTestService(t *testing.T) *foundingService {
	t.Helper()
	_, file, _, ok := goruntime.Caller(0)
	if !ok {
		t.Fatalf("cannot locate test file")
	}
	catalog, err := gamedata.Load(filepath.Join(filepath.Dir(file), "..", "..", "..", "data", "g18usa.yaml"))
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return newFoundingService(config.Defaults(), catalog)
}

func callPreview(t *testing.T, svc *foundingService, payload string) (FoundingPreviewResponse, error) {
	t.Helper()
	out, err := svc.rpcFoundingPreview(context.Background(), noopLogger{}, nil, nil, payload)
	if err != nil {
		return FoundingPreviewResponse{}, err
	}
	var resp FoundingPreviewResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode response %q: %v", out, err)
	}
	return resp, nil
}

func TestFoundingPreview(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name    string
		payload string
		want    FoundingPreviewResponse
	}{
		{
			name:    "no home token",
			payload: `{"corporation":"UP","player_cash":600}`,
			want:    FoundingPreviewResponse{MaxBid: 680, MaxCitySubsidy: 80, ParPriceCap: 200, MinBid: 100},
		},
		{
			name:    "home with subsidy",
			payload: `{"corporation":"UP","player_cash":300,"home_hex":"E11"}`,
			want:    FoundingPreviewResponse{MaxBid: 330, MaxCitySubsidy: 80, ParPriceCap: 165, MinBid: 100},
		},
		{
			name:    "companies count toward power",
			payload: `{"corporation":"UP","player_cash":200,"companies":["P7"],"home_hex":"C5"}`,
			want:    FoundingPreviewResponse{MaxBid: 250, MaxCitySubsidy: 80, ParPriceCap: 125, MinBid: 100},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := callPreview(t, svc, tt.payload)
			if err != nil {
				t.Fatalf("rpc error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("response = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFoundingPreviewErrors(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name    string
		payload string
		code    int
	}{
		{name: "bad json", payload: `{`, code: codeInvalidArgument},
		{name: "negative cash", payload: `{"corporation":"UP","player_cash":-1}`, code: codeInvalidArgument},
		{name: "unknown corporation", payload: `{"corporation":"XX","player_cash":1}`, code: codeNotFound},
		{name: "unknown hex", payload: `{"corporation":"UP","player_cash":1,"home_hex":"Z9"}`, code: codeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := callPreview(t, svc, tt.payload)
			var rerr *runtime.Error
			if !errors.As(err, &rerr) || rerr.Code != tt.code {
				t.Fatalf("err = %v, want runtime error code %d", err, tt.code)
			}
		})
	}
}

func TestPurchasableTrains(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name    string
		payload string
		skipped bool
		count   int
	}{
		{name: "railroad without fuel", payload: `{"corporation":"UP"}`, count: 15},
		{name: "railroad with fuel", payload: `{"corporation":"UP","fuel_supplied":true}`, count: 18},
		{name: "coal company", payload: `{"corporation":"CC","fuel_supplied":true}`, skipped: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := svc.rpcPurchasableTrains(context.Background(), noopLogger{}, nil, nil, tt.payload)
			if err != nil {
				t.Fatalf("rpc error: %v", err)
			}
			var resp PurchasableTrainsResponse
			if err := json.Unmarshal([]byte(out), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Skipped != tt.skipped || len(resp.Trains) != tt.count {
				t.Fatalf("skipped %v trains %d, want %v and %d", resp.Skipped, len(resp.Trains), tt.skipped, tt.count)
			}
		})
	}
}

func TestLogSinkTagsGameField(t *testing.T) {
	var lines []string
	logger := recordingLogger{lines: &lines}

	sink := logSink(logger)
	sink("Alice bids $100 for Union Pacific")

	if len(lines) != 1 || lines[0] != "Alice bids $100 for Union Pacific" {
		t.Fatalf("lines = %v", lines)
	}
}
