package cfg

type Cfg struct {
	// Storage configuration
	DBPath string

	// Application configuration
	Port            string
	FeedURLTemplate string
	StoreRegions    []string
	WorkerCount     int
	RefreshInterval int
	FetchTimeout    int

	// Query defaults
	TopPositiveThreshold float64
	StrongThreshold      float64

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	Version   string
}
