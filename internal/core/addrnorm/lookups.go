package addrnorm

import (
	"regexp"
	"sort"
	"strings"

	"reparto/internal/core/textnorm"
)

// streetPrefixes are the leading street-type words stripped from the key.
// Keep this list bounded; it covers the types and abbreviations seen in the
// portal exports. Matching is done on the folded text.
var streetPrefixes = []string{
	"calle", "cll", "cl", "c",
	"avenida", "avda", "avd", "av",
	"plaza", "plza", "pza", "pl",
	"paseo", "pso", "ps", "po",
	"camino", "cmno", "cno",
	"carretera", "ctra",
	"ronda", "rda",
	"travesia", "trva", "trv",
	"glorieta", "gta",
	"urbanizacion", "urb",
	"via",
}

// prepositions are dropped wherever they stand alone in the folded text
var prepositions = []string{
	"de", "del", "la", "las", "el", "los", "y", "en", "al", "a",
}

// cityNames is the fixed lookup list of city, district and country names that
// may trail an address after the postal code. Single tokens only; multi word
// names are listed in cityBigrams. All entries are pre folded.
var cityNames = []string{
	// cities
	"madrid", "barcelona", "valencia", "sevilla", "zaragoza", "malaga",
	"murcia", "palma", "bilbao", "alicante", "cordoba", "valladolid",
	"vigo", "gijon", "granada", "elche", "oviedo", "badalona", "getafe",
	"mostoles", "alcobendas", "leganes", "alcorcon", "hospitalet",
	// madrid districts
	"chamberi", "chamartin", "salamanca", "tetuan", "arganzuela",
	"carabanchel", "usera", "vallecas", "hortaleza", "moncloa", "latina",
	"retiro", "moratalaz", "villaverde", "barajas", "centro",
	// barcelona districts
	"eixample", "gracia", "sants", "sarria", "poblenou", "horta",
	// countries
	"espana", "spain",
}

// cityBigrams are two token city or district names checked as a pair
var cityBigrams = []string{
	"les corts", "sant marti", "ciutat vella", "el raval", "nou barris",
	"sant andreu", "puente vallecas", "villa vallecas", "san blas",
	"fuencarral pardo",
}

var (
	citySet   map[string]struct{}
	bigramSet map[string]struct{}
	prepSet   map[string]struct{}

	// prefixRe matches a leading street-type word followed by punctuation or
	// whitespace (or the end of the text for a bare prefix)
	prefixRe *regexp.Regexp

	// numberRe locates the street-number token: digits optionally followed by
	// a floor or unit qualifier word and a secondary digit
	numberRe = regexp.MustCompile(
		`(\d+)(?:\s*(?:piso|planta|pta|puerta|esc|escalera|portal|local|nave)\.?\s*(\d+))?`)

	// postalRe matches a Spanish postal code as a full token
	postalRe = regexp.MustCompile(`^\d{5}$`)

	punctReplacer = strings.NewReplacer(
		".", " ", ",", " ", ";", " ", ":", " ", "/", " ", "\\", " ",
		"-", " ", "'", " ", "´", " ", "`", " ", "\"", " ",
		"(", " ", ")", " ", "º", " ", "ª", " ", "&", " ", "#", " ",
	)
)

func init() {
	citySet = make(map[string]struct{}, len(cityNames))
	for _, c := range cityNames {
		citySet[c] = struct{}{}
	}
	bigramSet = make(map[string]struct{}, len(cityBigrams))
	for _, c := range cityBigrams {
		bigramSet[c] = struct{}{}
	}
	prepSet = make(map[string]struct{}, len(prepositions))
	for _, p := range prepositions {
		prepSet[p] = struct{}{}
	}

	// longest alternative first so "calle" wins over "c"
	prefixes := append([]string(nil), streetPrefixes...)
	sort.Slice(prefixes, func(i, j int) bool { return len(prefixes[i]) > len(prefixes[j]) })
	prefixRe = regexp.MustCompile(`^(?:` + strings.Join(prefixes, "|") + `)(?:[./\s]+|$)`)
}

// isCityToken reports whether the folded token is on the city/district list
func isCityToken(tok string) bool {
	_, ok := citySet[tok]
	return ok
}

// isCityBigram reports whether the folded token pair is on the bigram list
func isCityBigram(a, b string) bool {
	_, ok := bigramSet[a+" "+b]
	return ok
}

// foldToken folds a raw token and trims surrounding punctuation for lookup
func foldToken(tok string) string {
	return strings.Trim(textnorm.Fold(tok), ".,;:()-")
}
