package digest

import (
	"strings"
	"testing"

	"github.com/tarefasapp/tarefas/internal/models"
)

const placeholder = "There are no open tasks."

func countTaskRows(html string) int {
	return strings.Count(html, "<tr>\n")
}

func TestComposeEmpty(t *testing.T) {
	c, err := NewComposer("http://localhost:3000", true)
	if err != nil {
		t.Fatal(err)
	}

	html, err := c.Compose(nil)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if strings.Count(html, placeholder) != 1 {
		t.Errorf("expected a single placeholder row, got:\n%s", html)
	}
	if n := countTaskRows(html); n != 0 {
		t.Errorf("expected no task rows, got %d", n)
	}
	if !strings.Contains(html, `href="http://localhost:3000"`) {
		t.Errorf("expected call-to-action link, got:\n%s", html)
	}
}

func TestComposePreservesInputOrder(t *testing.T) {
	c, err := NewComposer("https://tarefas.example.com", true)
	if err != nil {
		t.Fatal(err)
	}
	tasks := []models.Task{
		{ID: 1, Name: "zeta", Priority: 1, Deadline: "2024-03-01"},
		{ID: 2, Name: "alpha", Priority: 5, Deadline: "2024-01-01"},
		{ID: 3, Name: "mid", Priority: 3, Deadline: "2024-02-01"},
	}

	html, err := c.Compose(tasks)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if n := countTaskRows(html); n != len(tasks) {
		t.Errorf("expected %d task rows, got %d", len(tasks), n)
	}
	if strings.Contains(html, placeholder) {
		t.Error("placeholder rendered for non-empty list")
	}

	last := -1
	for _, task := range tasks {
		i := strings.Index(html, ">"+task.Name+"<")
		if i < 0 {
			t.Fatalf("task %q not rendered", task.Name)
		}
		if i < last {
			t.Errorf("task %q rendered out of order", task.Name)
		}
		last = i
	}
	if !strings.Contains(html, ">2024-02-01<") || !strings.Contains(html, ">5<") {
		t.Errorf("expected deadline and priority cells, got:\n%s", html)
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	c, err := NewComposer("http://localhost:3000", true)
	if err != nil {
		t.Fatal(err)
	}
	tasks := []models.Task{{ID: 1, Name: "a", Priority: 1, Deadline: "2024-01-01"}}

	first, err := c.Compose(tasks)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Compose(tasks)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("expected identical output for identical input")
	}
}

func TestComposeEscaping(t *testing.T) {
	tasks := []models.Task{{ID: 1, Name: `<script>alert("x")</script>`, Priority: 1, Deadline: "2024-01-01"}}

	escaped, err := NewComposer("http://localhost:3000", true)
	if err != nil {
		t.Fatal(err)
	}
	html, err := escaped.Compose(tasks)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("expected task name to be escaped, got:\n%s", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Errorf("expected escaped markup, got:\n%s", html)
	}

	raw, err := NewComposer("http://localhost:3000", false)
	if err != nil {
		t.Fatal(err)
	}
	html, err = raw.Compose(tasks)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, `<script>alert("x")</script>`) {
		t.Errorf("expected verbatim task name, got:\n%s", html)
	}
}
