package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VitaminP8/blogery/internal/post"
)

// newTestPostStorage возвращает хранилище постов с одним зарегистрированным автором
func newTestPostStorage(t *testing.T) (*PostMemoryStorage, uint) {
	users := NewUserMemoryStorage()
	author, err := users.RegisterUser("author", "author@example.com", "password123")
	require.NoError(t, err)

	return NewPostMemoryStorage(users), author.ID
}

func TestPostMemoryStorage_CreatePost(t *testing.T) {
	storage, authorID := newTestPostStorage(t)

	t.Run("Successful post creation", func(t *testing.T) {
		p, err := storage.CreatePost("Test Post", "Some content", authorID, "TestCategory")
		require.NoError(t, err)
		assert.NotZero(t, p.ID)
		assert.Equal(t, "Test Post", p.Title)
		assert.Equal(t, "Some content", p.Content)
		assert.Equal(t, authorID, p.AuthorID)
		assert.Equal(t, "TestCategory", p.Category)
	})

	t.Run("Create post with non-existent author", func(t *testing.T) {
		_, err := storage.CreatePost("Test Post", "Some content", 9999, "TestCategory")
		assert.ErrorIs(t, err, post.ErrAuthorNotFound)
	})
}

func TestPostMemoryStorage_GetPostById(t *testing.T) {
	storage, authorID := newTestPostStorage(t)

	t.Run("Create then get returns an equal record", func(t *testing.T) {
		created, err := storage.CreatePost("Test Post", "Some content", authorID, "TestCategory")
		require.NoError(t, err)

		got, err := storage.GetPostById(created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("Get non-existent post", func(t *testing.T) {
		_, err := storage.GetPostById(9999)
		assert.ErrorIs(t, err, post.ErrPostNotFound)
	})
}

func TestPostMemoryStorage_GetAllPosts(t *testing.T) {
	t.Run("Returns all posts in id order", func(t *testing.T) {
		storage, authorID := newTestPostStorage(t)

		first, err := storage.CreatePost("First", "Content 1", authorID, "Cat")
		require.NoError(t, err)
		second, err := storage.CreatePost("Second", "Content 2", authorID, "Cat")
		require.NoError(t, err)

		posts, err := storage.GetAllPosts()
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, first.ID, posts[0].ID)
		assert.Equal(t, second.ID, posts[1].ID)
	})

	t.Run("Empty storage", func(t *testing.T) {
		storage, _ := newTestPostStorage(t)

		posts, err := storage.GetAllPosts()
		require.NoError(t, err)
		assert.Empty(t, posts)
	})
}

func TestPostMemoryStorage_UpdatePost(t *testing.T) {
	t.Run("Full replace of an existing post", func(t *testing.T) {
		storage, authorID := newTestPostStorage(t)

		created, err := storage.CreatePost("Old Title", "Old content", authorID, "OldCat")
		require.NoError(t, err)

		updated, err := storage.UpdatePost(created.ID, "New Title", "New content", authorID, "NewCat")
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "New Title", updated.Title)
		assert.Equal(t, "New content", updated.Content)
		assert.Equal(t, "NewCat", updated.Category)
	})

	t.Run("Update non-existent post", func(t *testing.T) {
		storage, authorID := newTestPostStorage(t)

		_, err := storage.UpdatePost(9999, "Title", "Content", authorID, "Cat")
		assert.ErrorIs(t, err, post.ErrPostNotFound)
	})

	t.Run("Update with non-existent author does not mutate the record", func(t *testing.T) {
		storage, authorID := newTestPostStorage(t)

		created, err := storage.CreatePost("Title", "Content", authorID, "Cat")
		require.NoError(t, err)

		_, err = storage.UpdatePost(created.ID, "New Title", "New content", 9999, "NewCat")
		assert.ErrorIs(t, err, post.ErrAuthorNotFound)

		got, err := storage.GetPostById(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Title", got.Title)
	})

	t.Run("Missing post wins over non-existent author", func(t *testing.T) {
		storage, _ := newTestPostStorage(t)

		_, err := storage.UpdatePost(9999, "Title", "Content", 9999, "Cat")
		assert.ErrorIs(t, err, post.ErrPostNotFound)
	})
}

// Хранилище отдает копии записей: мутация результата не должна менять хранилище
func TestPostMemoryStorage_ReturnsCopies(t *testing.T) {
	storage, authorID := newTestPostStorage(t)

	created, err := storage.CreatePost("Title", "Content", authorID, "Cat")
	require.NoError(t, err)

	created.Title = "Mutated"

	got, err := storage.GetPostById(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Title", got.Title)

	got.Title = "Mutated again"

	all, err := storage.GetAllPosts()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Title", all[0].Title)
}

func TestPostMemoryStorage_DeletePostById(t *testing.T) {
	t.Run("Delete then get returns not found", func(t *testing.T) {
		storage, authorID := newTestPostStorage(t)

		created, err := storage.CreatePost("Title", "Content", authorID, "Cat")
		require.NoError(t, err)

		require.NoError(t, storage.DeletePostById(created.ID))

		_, err = storage.GetPostById(created.ID)
		assert.ErrorIs(t, err, post.ErrPostNotFound)
	})

	t.Run("Repeated delete returns not found", func(t *testing.T) {
		storage, authorID := newTestPostStorage(t)

		created, err := storage.CreatePost("Title", "Content", authorID, "Cat")
		require.NoError(t, err)

		require.NoError(t, storage.DeletePostById(created.ID))
		err = storage.DeletePostById(created.ID)
		assert.ErrorIs(t, err, post.ErrPostNotFound)
	})
}
