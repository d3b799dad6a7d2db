package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/rdf-go-jsonld/rdf"
)

const sampleNT = `<http://example.org/alice> <http://xmlns.com/foaf/0.1/name> "Alice" .
<http://example.org/alice> <http://xmlns.com/foaf/0.1/knows> _:b0 .
_:b0 <http://xmlns.com/foaf/0.1/name> "Bob" .
`

const sampleNQ = `<http://example.org/alice> <http://xmlns.com/foaf/0.1/name> "Alice" .
_:b0 <http://xmlns.com/foaf/0.1/name> "Bob" <http://example.org/g> .
`

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := rootCmd(strings.NewReader(stdin), &stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "rdf2jsonld version "+Version+"\n", out)
}

func TestConvertNTriplesToNQuads(t *testing.T) {
	path := writeFile(t, "people.nt", sampleNT)
	out, _, err := execute(t, "", "convert", path, "--format", "nquads")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.ElementsMatch(t, []string{
		`<http://example.org/alice> <http://xmlns.com/foaf/0.1/name> "Alice" .`,
		`<http://example.org/alice> <http://xmlns.com/foaf/0.1/knows> _:t1 .`,
		`_:t1 <http://xmlns.com/foaf/0.1/name> "Bob" .`,
	}, lines)
}

func TestConvertStdinDetectsFormat(t *testing.T) {
	out, _, err := execute(t, sampleNQ, "convert", "--format", "nquads")
	require.NoError(t, err)
	assert.Contains(t, out, `_:t1 <http://xmlns.com/foaf/0.1/name> "Bob" <http://example.org/g> .`)

	out, logs, err := execute(t, sampleNT, "convert", "--format", "nquads")
	require.NoError(t, err)
	assert.Contains(t, out, `_:t1 <http://xmlns.com/foaf/0.1/name> "Bob" .`)
	assert.Contains(t, logs, "format=ntriples")
}

func TestConvertSubject(t *testing.T) {
	out, _, err := execute(t, sampleNT, "convert", "-i", "ntriples", "--subject", "_:b0", "--format", "nquads")
	require.NoError(t, err)
	assert.Equal(t, `_:t1 <http://xmlns.com/foaf/0.1/name> "Bob" .`+"\n", out)

	out, logs, err := execute(t, sampleNQ, "convert", "--subject", "<http://example.org/alice>", "--format", "nquads")
	require.NoError(t, err)
	assert.Equal(t, `<http://example.org/alice> <http://xmlns.com/foaf/0.1/name> "Alice" .`+"\n", out)
	assert.Contains(t, logs, "subject is looked up in the default graph only")
	assert.Contains(t, logs, "named_graphs=1")
}

const sampleTTL = `@prefix ex: <http://example.org/> .
@prefix foaf: <http://xmlns.com/foaf/0.1/> .
ex:alice foaf:name "Alice" ;
    foaf:knows [ foaf:name "Bob" ] .
`

func TestConvertTurtleUsesDeclaredPrefixes(t *testing.T) {
	path := writeFile(t, "people.ttl", sampleTTL)
	out, logs, err := execute(t, "", "convert", path, "--subject", "http://example.org/alice", "--compact")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "ex:alice", doc["@id"])
	assert.Equal(t, "Alice", doc["foaf:name"])
	assert.Contains(t, logs, "format=turtle")
}

func TestConvertTriGStdin(t *testing.T) {
	input := "@prefix ex: <http://example.org/> .\nex:g { ex:s ex:p \"v\" . }\n"
	out, logs, err := execute(t, input, "convert", "--format", "nquads")
	require.NoError(t, err)
	assert.Equal(t, `<http://example.org/s> <http://example.org/p> "v" <http://example.org/g> .`+"\n", out)
	assert.Contains(t, logs, "format=trig")

	out, _, err = execute(t, input, "convert", "--compact")
	require.NoError(t, err)
	assert.Contains(t, out, `"ex:g"`)
	assert.Contains(t, out, `"ex:s"`)
}

func TestConvertInputMediaType(t *testing.T) {
	out, _, err := execute(t, sampleTTL, "convert", "-i", "text/turtle", "--format", "nquads")
	require.NoError(t, err)
	assert.Contains(t, out, `<http://example.org/alice> <http://xmlns.com/foaf/0.1/name> "Alice" .`)
	assert.Contains(t, out, `_:t1 <http://xmlns.com/foaf/0.1/name> "Bob" .`)
}

func TestConvertNTriplesOutput(t *testing.T) {
	out, _, err := execute(t, sampleNT, "convert", "-i", "ntriples", "--format", "ntriples")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		`<http://example.org/alice> <http://xmlns.com/foaf/0.1/name> "Alice" .`,
		`<http://example.org/alice> <http://xmlns.com/foaf/0.1/knows> _:t1 .`,
		`_:t1 <http://xmlns.com/foaf/0.1/name> "Bob" .`,
	}, "\n")+"\n", out)

	_, _, err = execute(t, sampleNQ, "convert", "-i", "nquads", "--format", "ntriples")
	assert.ErrorContains(t, err, "write ntriples")
}

func TestConvertCompactJSONLD(t *testing.T) {
	out, _, err := execute(t, sampleNT, "convert", "-i", "ntriples",
		"--subject", "http://example.org/alice",
		"--prefix", "foaf=http://xmlns.com/foaf/0.1/",
		"--prefix", "ex=http://example.org/",
		"--compact")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "ex:alice", doc["@id"])
	assert.Equal(t, "Alice", doc["foaf:name"])
	assert.Contains(t, doc, "@context")
}

func TestConvertConfigFileAndOutput(t *testing.T) {
	cfgPath := writeFile(t, "config.yaml", "blank_node_prefix: n\noutput:\n  format: nquads\n")
	outPath := filepath.Join(t.TempDir(), "out.nq")

	_, _, err := execute(t, sampleNT, "convert", "-c", cfgPath, "-i", "ntriples", "-o", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `_:n1 <http://xmlns.com/foaf/0.1/name> "Bob" .`)
}

func TestConvertDebugLogging(t *testing.T) {
	_, logs, err := execute(t, sampleNQ, "convert", "--log-level", "debug", "--format", "nquads")
	require.NoError(t, err)
	assert.Contains(t, logs, "imported RDF input")
	assert.Contains(t, logs, "converted input")
}

func TestConvertErrors(t *testing.T) {
	_, _, err := execute(t, "", "convert", filepath.Join(t.TempDir(), "missing.nt"))
	assert.ErrorContains(t, err, "open input")

	_, _, err = execute(t, "", "convert", "-i", "rdfxml")
	assert.ErrorIs(t, err, rdf.ErrUnsupportedFormat)

	_, _, err = execute(t, "", "convert", "--format", "xml")
	assert.ErrorContains(t, err, "invalid configuration")

	_, _, err = execute(t, sampleNT, "convert", "--subject", "alice")
	assert.ErrorIs(t, err, rdf.ErrInvalidIRI)

	_, _, err = execute(t, "<http://example.org/s> <http://example.org/p> .\n", "convert", "-i", "ntriples")
	var parseErr *rdf.ParseError
	assert.ErrorAs(t, err, &parseErr)
}
