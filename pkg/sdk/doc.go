// Package gamerec embeds the game catalog and recommender in a Go program
// without running the HTTP service.
//
// The recommender is fitted once, in New, over the catalog stored in the
// SQLite file. Games added later are visible to Games, Lookup and Search but
// not to recommendations until a new Client is created.
//
//	client, _ := gamerec.New(ctx, gamerec.WithSQLite("data/games.db"))
//	defer client.Close()
//
//	recs := client.RecommendByTitle(ctx, "The Witcher 3", 3)
//	for _, r := range recs {
//	    fmt.Println(r.Game.Title, r.Score)
//	}
//
// Recommendations never fail: when the engine cannot answer, the first games
// of the catalog are returned instead.
package gamerec
