package domain

// Requirement is the category a user attaches to a help request. The set of
// known values is closed; anything else routes to the catch-all listing.
type Requirement string

const (
	BedsWithoutOxygen  Requirement = "Beds without oxygen"
	BedsWithOxygen     Requirement = "Beds with oxygen"
	MedicineType       Requirement = "Medicine Type"
	OxygenConcentrator Requirement = "Oxygen Concentrator"
	Plasma             Requirement = "Plasma"
)

// Requirements lists the known request categories in listing order.
func Requirements() []Requirement {
	return []Requirement{
		BedsWithoutOxygen,
		BedsWithOxygen,
		MedicineType,
		OxygenConcentrator,
		Plasma,
	}
}

// Redirect maps a requirement to the listing page a successful submission
// lands on. Unknown values fall through to the catch-all page.
func (r Requirement) Redirect() string {
	switch r {
	case BedsWithoutOxygen:
		return "/bwo"
	case BedsWithOxygen:
		return "/bo"
	case MedicineType:
		return "/mt"
	case OxygenConcentrator:
		return "/oc"
	case Plasma:
		return "/p"
	default:
		return "/others"
	}
}

// OfferType is the category attached to a service offer. It is a separate
// enumeration from Requirement and the two do not share literals.
type OfferType string

const (
	FinancialServices   OfferType = "Financial Services"
	FoodServices        OfferType = "Food Services"
	AmbulanceServices   OfferType = "Ambulance Services"
	OfferBedsWithoutOxy OfferType = "Beds without Oxygen"
	OfferBedsWithOxygen OfferType = "Beds with Oxygen"
	OfferMedicineType   OfferType = "Medicine Type"
	OxygenSupply        OfferType = "Oxygen Supply"
	OfferPlasma         OfferType = "Plasma"
	Vaccination         OfferType = "Vaccination"
)

// Redirect maps an offer type to its listing page, with a catch-all default.
func (t OfferType) Redirect() string {
	switch t {
	case FinancialServices:
		return "/fs"
	case FoodServices:
		return "/fos"
	case AmbulanceServices:
		return "/as"
	case OfferBedsWithoutOxy:
		return "/bwox"
	case OfferBedsWithOxygen:
		return "/box"
	case OfferMedicineType:
		return "/mtp"
	case OxygenSupply:
		return "/os"
	case OfferPlasma:
		return "/pl"
	case Vaccination:
		return "/vc"
	default:
		return "/otherss"
	}
}
