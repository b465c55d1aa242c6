package api

type Collection string

const (
	CollectionChangelogs   Collection = "changelogs"
	CollectionLeafSchemas  Collection = "leaf-schemas"
	CollectionNFTMetadata  Collection = "nft-metadata"
	CollectionDecompressed Collection = "decompressed"
	CollectionTransactions Collection = "transactions"
)

func (c Collection) String() string {
	return string(c)
}
