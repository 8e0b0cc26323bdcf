package InputParameters

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/notargets/goswe/PCCU1D"
	"github.com/notargets/goswe/model_problems"
)

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title          string               `yaml:"Title"`
	Model          string               `yaml:"Model"`
	InitType       string               `yaml:"InitType"`
	Bottom         string               `yaml:"Bottom"`
	Nx             int                  `yaml:"Nx"`
	XMin           float64              `yaml:"XMin"`
	XMax           float64              `yaml:"XMax"`
	FinalTime      float64              `yaml:"FinalTime"`
	Theta          float64              `yaml:"Theta"`
	Epsilon        float64              `yaml:"Epsilon"`
	DtFact         float64              `yaml:"DtFact"`
	TimeScheme     string               `yaml:"TimeScheme"`
	Diffusion      string               `yaml:"Diffusion"`      // Auto, PathJacobian or StateJump
	ParallelDegree int                  `yaml:"ParallelDegree"`
	G              float64              `yaml:"G"`
	R              *float64             `yaml:"R"`              // Unset selects the model default
	BCs            map[string][2]BCRule `yaml:"BCs"`            // Variable name to [left, right] rules
	InitParams     map[string]float64   `yaml:"InitParams"`     // Named parameters of the initial condition
	OutputEvery    int                  `yaml:"OutputEvery"`
	OutputFile     string               `yaml:"OutputFile"`
	PlotFile       string               `yaml:"PlotFile"`
}

// BCRule is a boundary rule name or a fixed ghost value. Both a YAML string
// and a YAML number are accepted.
type BCRule string

func (r *BCRule) UnmarshalJSON(data []byte) (err error) {
	var (
		s string
		f float64
	)
	if err = json.Unmarshal(data, &s); err == nil {
		*r = BCRule(s)
		return
	}
	if err = json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("boundary rule must be a name or a number, have %s", string(data))
	}
	*r = BCRule(strconv.FormatFloat(f, 'g', -1, 64))
	return
}

// Defaults returns a one layer dam break on [-1,1]
func Defaults() (ip *InputParameters1D) {
	cfg := PCCU1D.DefaultConfig()
	ip = &InputParameters1D{
		Title:          "Dam Break",
		Model:          "SW1LGlobal",
		InitType:       "DamBreak",
		Bottom:         "flat",
		Nx:             200,
		XMin:           -1,
		XMax:           1,
		FinalTime:      0.1,
		Theta:          cfg.Theta,
		Epsilon:        cfg.Epsilon,
		DtFact:         cfg.DtFact,
		TimeScheme:     cfg.Scheme.String(),
		Diffusion:      cfg.Diffusion.String(),
		ParallelDegree: cfg.ParallelDegree,
		G:              9.81,
		OutputEvery:    10,
	}
	return
}

// Parse overlays the YAML document onto the receiver, keys missing from the
// document keep their current values
func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// ReadFile parses an input file on top of Defaults()
func ReadFile(fileName string) (ip *InputParameters1D, err error) {
	var data []byte
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	ip = Defaults()
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("parsing %s: %w", fileName, err)
		return nil, err
	}
	return
}

func (ip *InputParameters1D) Validate() (err error) {
	switch {
	case ip.Nx < 3:
		return &PCCU1D.ConfigurationError{Field: "Nx", Reason: fmt.Sprintf("need at least 3 cells, have %d", ip.Nx)}
	case !(ip.XMax > ip.XMin):
		return &PCCU1D.ConfigurationError{Field: "XMax", Reason: fmt.Sprintf("empty domain [%v,%v]", ip.XMin, ip.XMax)}
	case !(ip.FinalTime > 0):
		return &PCCU1D.ConfigurationError{Field: "FinalTime", Reason: fmt.Sprintf("must be positive, have %v", ip.FinalTime)}
	}
	if _, err = model_problems.ParseModelType(ip.Model); err != nil {
		return
	}
	if _, err = ip.Config(); err != nil {
		return
	}
	_, err = ip.PhysicalParams()
	return
}

// Config converts the numerical parameters into a solver Config
func (ip *InputParameters1D) Config() (cfg PCCU1D.Config, err error) {
	var (
		ts PCCU1D.TimeScheme
		df PCCU1D.Diffusion
	)
	if ts, err = PCCU1D.ParseTimeScheme(ip.TimeScheme); err != nil {
		return
	}
	if df, err = PCCU1D.ParseDiffusion(ip.Diffusion); err != nil {
		return
	}
	cfg = PCCU1D.Config{
		Theta:          ip.Theta,
		Epsilon:        ip.Epsilon,
		DtFact:         ip.DtFact,
		Scheme:         ts,
		Diffusion:      df,
		ParallelDegree: ip.ParallelDegree,
	}
	err = cfg.Validate()
	return
}

// PhysicalParams starts from the model defaults and applies G and R when set
func (ip *InputParameters1D) PhysicalParams() (p PCCU1D.PhysicalParams, err error) {
	if p, err = model_problems.DefaultPhysicalParams(ip.Model); err != nil {
		return
	}
	if ip.G != 0 {
		p.G = ip.G
	}
	if ip.R != nil {
		p.R = *ip.R
	}
	err = p.Validate()
	return
}

// BoundaryRules orders the BCs by the conserved variables of a model. Keys
// match variable names case-insensitively, variables without an entry get
// symmetry at both ends.
func (ip *InputParameters1D) BoundaryRules(varNames []string) (rules [][2]string, err error) {
	var (
		conserved = varNames[:len(varNames)-1]
		index     = make(map[string]int, len(conserved))
	)
	rules = make([][2]string, len(conserved))
	for n, name := range conserved {
		index[strings.ToLower(name)] = n
		rules[n] = [2]string{"symmetry", "symmetry"}
	}
	for key, pair := range ip.BCs {
		n, ok := index[strings.ToLower(key)]
		if !ok {
			err = &PCCU1D.ConfigurationError{
				Field:  "BCs",
				Reason: fmt.Sprintf("%q is not a conserved variable, use one of %v", key, conserved),
			}
			return nil, err
		}
		rules[n] = [2]string{string(pair[0]), string(pair[1])}
	}
	return
}

func (ip *InputParameters1D) Print() {
	ip.Fprint(os.Stdout)
}

func (ip *InputParameters1D) Fprint(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	fmt.Fprintf(w, "[%s]\t\t= Model\n", ip.Model)
	fmt.Fprintf(w, "[%s]\t\t= InitType\n", ip.InitType)
	fmt.Fprintf(w, "[%s]\t\t\t= Bottom\n", ip.Bottom)
	fmt.Fprintf(w, "[%d]\t\t\t= Nx\n", ip.Nx)
	fmt.Fprintf(w, "[%8.5f,%8.5f]\t= Domain\n", ip.XMin, ip.XMax)
	fmt.Fprintf(w, "%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Fprintf(w, "%8.5f\t\t= Theta\n", ip.Theta)
	fmt.Fprintf(w, "%8.5g\t\t= Epsilon\n", ip.Epsilon)
	fmt.Fprintf(w, "%8.5f\t\t= DtFact\n", ip.DtFact)
	fmt.Fprintf(w, "[%s]\t\t\t= TimeScheme\n", ip.TimeScheme)
	fmt.Fprintf(w, "[%s]\t\t\t= Diffusion\n", ip.Diffusion)
	if p, err := ip.PhysicalParams(); err == nil {
		fmt.Fprintf(w, "%8.5f\t\t= G\n", p.G)
		fmt.Fprintf(w, "%8.5f\t\t= R\n", p.R)
	}
	for _, key := range sortedKeys(ip.BCs) {
		fmt.Fprintf(w, "BCs[%s] = %v\n", key, ip.BCs[key])
	}
	for _, key := range sortedKeys(ip.InitParams) {
		fmt.Fprintf(w, "InitParams[%s] = %v\n", key, ip.InitParams[key])
	}
}

func sortedKeys[V any](m map[string]V) (keys []string) {
	keys = make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}
