// Package erst models the raw company record served by the ERST CVR search
// index and the upstream client that fetches it. Field names mirror the
// upstream JSON document; translation to the public schema lives in
// internal/company/translate.
package erst

// Periode bounds the validity of a versioned item. GyldigTil is nil while the
// item is still in force.
type Periode struct {
	GyldigFra string  `json:"gyldigFra"`
	GyldigTil *string `json:"gyldigTil"`
}

// Versioned is satisfied by every period-stamped sub-record, letting the
// Current/Last selectors work across all of them.
type Versioned interface {
	Period() *Periode
}

type Navn struct {
	Navn    string   `json:"navn"`
	Periode *Periode `json:"periode"`
}

func (n Navn) Period() *Periode { return n.Periode }

type Hjemmeside struct {
	Kontaktoplysning string   `json:"kontaktoplysning"`
	Periode          *Periode `json:"periode"`
}

func (h Hjemmeside) Period() *Periode { return h.Periode }

type Virksomhedsstatus struct {
	Status  string   `json:"status"`
	Periode *Periode `json:"periode"`
}

func (s Virksomhedsstatus) Period() *Periode { return s.Periode }

type Livsforloeb struct {
	Periode *Periode `json:"periode"`
}

func (l Livsforloeb) Period() *Periode { return l.Periode }

type Vaerdi struct {
	Vaerdi  string   `json:"vaerdi"`
	Periode *Periode `json:"periode"`
}

func (v Vaerdi) Period() *Periode { return v.Periode }

type Attribut struct {
	Type     string   `json:"type"`
	Vaerdier []Vaerdi `json:"vaerdier"`
}

type MedlemsData struct {
	Attributter []Attribut `json:"attributter"`
}

type Organisation struct {
	Hovedtype   string        `json:"hovedtype"`
	MedlemsData []MedlemsData `json:"medlemsData"`
}

type Deltager struct {
	EnhedsNummer int64  `json:"enhedsNummer"`
	Enhedstype   string `json:"enhedstype"`
	Navne        []Navn `json:"navne"`
}

type DeltagerRelation struct {
	Deltager       Deltager       `json:"deltager"`
	Organisationer []Organisation `json:"organisationer"`
}

type Hovedbranche struct {
	Branchekode string `json:"branchekode"`
}

type Maanedsbeskaeftigelse struct {
	Aar                      int    `json:"aar"`
	Maaned                   int    `json:"maaned"`
	IntervalKodeAntalAnsatte string `json:"intervalKodeAntalAnsatte"`
}

type Beliggenhedsadresse struct {
	Vejnavn      string `json:"vejnavn"`
	HusnummerFra *int   `json:"husnummerFra"`
	BogstavFra   string `json:"bogstavFra"`
	Etage        string `json:"etage"`
	Sidedoer     string `json:"sidedoer"`
	Postnummer   int    `json:"postnummer"`
	Postdistrikt string `json:"postdistrikt"`
	Landekode    string `json:"landekode"`
}

// Metadata is the upstream's own denormalization of the latest values.
type Metadata struct {
	NyesteNavn                  *Navn                  `json:"nyesteNavn"`
	NyesteHovedbranche          *Hovedbranche          `json:"nyesteHovedbranche"`
	NyesteMaanedsbeskaeftigelse *Maanedsbeskaeftigelse `json:"nyesteMaanedsbeskaeftigelse"`
	NyesteBeliggenhedsadresse   *Beliggenhedsadresse   `json:"nyesteBeliggenhedsadresse"`
}

// Record is one company as stored in the cvr-permanent index
// (the Vrvirksomhed sub-document of a search hit).
type Record struct {
	CVRNummer          int64               `json:"cvrNummer"`
	Navne              []Navn              `json:"navne"`
	Hjemmeside         []Hjemmeside        `json:"hjemmeside"`
	Virksomhedsstatus  []Virksomhedsstatus `json:"virksomhedsstatus"`
	Livsforloeb        []Livsforloeb       `json:"livsforloeb"`
	DeltagerRelation   []DeltagerRelation  `json:"deltagerRelation"`
	VirksomhedMetadata Metadata            `json:"virksomhedMetadata"`
}
