package anagramserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const (
	// AnagrammerName is the fully-qualified name of the Anagrammer service.
	AnagrammerName = "anagrammer.Anagrammer"

	AnagrammerAnagramProcedure     = "/anagrammer.Anagrammer/Anagram"
	AnagrammerLexiconInfoProcedure = "/anagrammer.Anagrammer/LexiconInfo"
)

// JSONCodec lets connect carry the plain Go request and response structs of
// this package. It replaces connect's protobuf JSON codec under the same name.
type JSONCodec struct{}

func (JSONCodec) Name() string {
	return "json"
}

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// NewAnagrammerHandler builds an HTTP handler for the service. It returns the
// path to mount it on.
func NewAnagrammerHandler(svc *Server, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	anagramHandler := connect.NewUnaryHandler(
		AnagrammerAnagramProcedure,
		svc.Anagram,
		opts...,
	)
	lexiconInfoHandler := connect.NewUnaryHandler(
		AnagrammerLexiconInfoProcedure,
		svc.LexiconInfo,
		opts...,
	)
	return "/" + AnagrammerName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AnagrammerAnagramProcedure:
			anagramHandler.ServeHTTP(w, r)
		case AnagrammerLexiconInfoProcedure:
			lexiconInfoHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// AnagrammerClient calls a remote Anagrammer service.
type AnagrammerClient struct {
	anagram     *connect.Client[AnagramRequest, AnagramResponse]
	lexiconInfo *connect.Client[LexiconInfoRequest, LexiconInfoResponse]
}

func NewAnagrammerClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AnagrammerClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
	return &AnagrammerClient{
		anagram: connect.NewClient[AnagramRequest, AnagramResponse](
			httpClient, baseURL+AnagrammerAnagramProcedure, opts...),
		lexiconInfo: connect.NewClient[LexiconInfoRequest, LexiconInfoResponse](
			httpClient, baseURL+AnagrammerLexiconInfoProcedure, opts...),
	}
}

func (c *AnagrammerClient) Anagram(ctx context.Context, req *connect.Request[AnagramRequest]) (
	*connect.Response[AnagramResponse], error) {
	return c.anagram.CallUnary(ctx, req)
}

func (c *AnagrammerClient) LexiconInfo(ctx context.Context, req *connect.Request[LexiconInfoRequest]) (
	*connect.Response[LexiconInfoResponse], error) {
	return c.lexiconInfo.CallUnary(ctx, req)
}
