package structs

type Region struct {
	Name     string `json:"name"`
	Endpoint string `json:"endpoint"`
}

type Regions []Region

type RegionListOptions struct {
	Only []string
}

// Names returns the region names in order
func (rs Regions) Names() []string {
	names := make([]string, len(rs))

	for i, r := range rs {
		names[i] = r.Name
	}

	return names
}
