// Package healthdir embeds the healthcare directory search in a Go program,
// reading records straight from Redis, Valkey or PostgreSQL.
//
//	client, err := healthdir.New(ctx, healthdir.WithRedis("localhost:6379", ""))
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	resp, err := client.Search(ctx, "zoloft", healthdir.SearchOptions{Limit: 10})
//	for _, r := range resp.Results {
//	    fmt.Println(r.Type, r.Name, r.MatchCount)
//	}
//
// Queries shorter than two characters fail with ErrQueryTooShort.
package healthdir
