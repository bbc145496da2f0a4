package http

type KeyInput struct {
	Key int64 `path:"key" minimum:"-2147483648" maximum:"2147483647" example:"42" doc:"Key of the entry"`
}

type PutKeyInputBody struct {
	Value string `json:"value,omitempty" example:"{\"user_id\": 1}" doc:"Value stored under the key"`
}

type PutKeyInput struct {
	Key  int64 `path:"key" minimum:"-2147483648" maximum:"2147483647" example:"42" doc:"Key of the entry"`
	Body PutKeyInputBody
}

type PutKeyOutputBody struct {
	Status string `json:"status" example:"INSERTED" doc:"INSERTED for a new key, UPDATED for an existing one"`
	Key    int32  `json:"key" example:"42" doc:"Key of the entry"`
	Value  string `json:"value" doc:"Value stored under the key"`
}

type PutKeyOutput struct {
	Status int
	Body   PutKeyOutputBody
}

type EntryOutputBody struct {
	Key    int32  `json:"key" example:"42" doc:"Key of the entry"`
	Value  string `json:"value" doc:"Value stored under the key"`
	Rank   int    `json:"rank" example:"3" doc:"Number of smaller keys in the index"`
	Height int    `json:"height" example:"2" doc:"Height of the subtree rooted at the entry"`
	Size   int    `json:"size" example:"3" doc:"Number of entries in the subtree rooted at the entry"`
}

type EntryOutput struct {
	Status int
	Body   EntryOutputBody
}

type DeleteKeyOutputBody struct {
	Status string `json:"status" example:"DELETED" doc:"Status of the delete operation"`
	Key    int32  `json:"key" example:"42" doc:"Key of the entry"`
	Value  string `json:"value" doc:"Value the key held"`
}

type DeleteKeyOutput struct {
	Status int
	Body   DeleteKeyOutputBody
}

type RankOutputBody struct {
	Key  int32 `json:"key" example:"42" doc:"Key of the entry"`
	Rank int   `json:"rank" example:"3" doc:"Number of smaller keys in the index"`
}

type RankOutput struct {
	Status int
	Body   RankOutputBody
}

type FindRankInput struct {
	Rank int `path:"rank" minimum:"0" example:"3" doc:"Zero based position in key order"`
}

type KeysOutputBody struct {
	Keys []int32 `json:"keys" doc:"Keys in ascending order"`
}

type KeysOutput struct {
	Status int
	Body   KeysOutputBody
}

type StatsOutputBody struct {
	Size      int     `json:"size" example:"7" doc:"Number of keys"`
	Height    int     `json:"height" example:"3" doc:"Height of the tree"`
	InsertRPS float64 `json:"insert_rps" doc:"Inserts per second"`
	DeleteRPS float64 `json:"delete_rps" doc:"Deletes per second"`
	ReadRPS   float64 `json:"read_rps" doc:"Reads per second"`
}

type StatsOutput struct {
	Status int
	Body   StatsOutputBody
}
