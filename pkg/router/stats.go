package router

// Stats counts what the router did since it was created.
type Stats struct {
	Events         int
	Ignored        int
	Reloads        int
	ReloadFailures int
	Renamed        int
	Unchanged      int
	NoMatch        int
	Vanished       int
	Locked         int
	Failed         int
}
