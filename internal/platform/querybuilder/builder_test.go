package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "played_at", "score").
		From("matches").
		Where(Eq("chat_id", int64(42)), Eq("thread_id", int64(0))).
		OrderBy("played_at DESC", "id DESC").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, played_at, score FROM matches WHERE chat_id = $1 AND thread_id = $2 ORDER BY played_at DESC, id DESC LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(42) || args[1] != int64(0) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_JoinGroupByAndExpr(t *testing.T) {
	query, args, err := Select("p.player_id", "count(*) AS best_defender").
		From("match_participants p").
		Join("JOIN matches m ON m.id = p.match_id").
		Where(Eq("m.chat_id", int64(7)), Expr("p.best_defender > ?", 0)).
		GroupBy("p.player_id").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT p.player_id, count(*) AS best_defender FROM match_participants p JOIN matches m ON m.id = p.match_id WHERE m.chat_id = $1 AND p.best_defender > $2 GROUP BY p.player_id"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != int64(7) || args[1] != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyIn(t *testing.T) {
	query, args, err := Select("id").
		From("players").
		Where(In("id", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM players WHERE 1=0"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
